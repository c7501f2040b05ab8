package services

import (
	"path/filepath"
	"testing"

	"github.com/alias8/invoices-demo-be/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	svc := NewSnapshotService(db)
	data := testDataset()
	require.NoError(t, svc.Save(data))

	loaded, err := svc.Load()
	require.NoError(t, err)

	require.Len(t, loaded.Users, len(data.Users))
	assert.Equal(t, data.Users[0].ID, loaded.Users[0].ID)
	assert.Equal(t, data.Users[0].PasswordHash, loaded.Users[0].PasswordHash)

	require.Len(t, loaded.Accounts, len(data.Accounts))
	for i, a := range data.Accounts {
		assert.Equal(t, a.ID, loaded.Accounts[i].ID, "account order must survive the round trip")
		assert.Equal(t, a.CustomerIDs, loaded.Accounts[i].CustomerIDs)
	}

	require.Len(t, loaded.Customers, len(data.Customers))
	for i, c := range data.Customers {
		assert.Equal(t, c.ID, loaded.Customers[i].ID)
		assert.Equal(t, c.InvoiceIDs, loaded.Customers[i].InvoiceIDs)
		assert.True(t, c.CreatedDate.Equal(loaded.Customers[i].CreatedDate))
	}

	require.Len(t, loaded.Invoices, len(data.Invoices))
	for i, inv := range data.Invoices {
		assert.Equal(t, inv.ID, loaded.Invoices[i].ID)
		assert.Equal(t, inv.PurchasedPrice, loaded.Invoices[i].PurchasedPrice)
	}
}

func TestSnapshotSaveReplacesPrevious(t *testing.T) {
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	svc := NewSnapshotService(db)
	require.NoError(t, svc.Save(testDataset()))
	require.NoError(t, svc.Save(testDataset()))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Accounts, 3)
	assert.Len(t, loaded.Invoices, 3)
}

func TestSnapshotLoadMissing(t *testing.T) {
	db, err := database.New(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	_, err = NewSnapshotService(db).Load()
	assert.ErrorIs(t, err, ErrSnapshotMissing)
}
