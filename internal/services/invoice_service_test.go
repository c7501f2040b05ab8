package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInvoices(t *testing.T) {
	svc := NewInvoiceService(newTestStore())

	invoices, err := svc.ListInvoices("s1")
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, "i1", invoices[0].ID)
	assert.Equal(t, "i3", invoices[2].ID)
}

func TestGetInvoiceByID(t *testing.T) {
	svc := NewInvoiceService(newTestStore())

	invoice, err := svc.GetInvoiceByID("s1", "i2")
	require.NoError(t, err)
	assert.Equal(t, 20, invoice.PurchasedPrice)

	_, err = svc.GetInvoiceByID("s1", "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
