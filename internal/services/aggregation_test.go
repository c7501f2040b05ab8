package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsWithRevenue(t *testing.T) {
	data := testDataset()
	accounts := AccountsWithRevenue(data)

	require.Len(t, accounts, 3)
	require.NotNil(t, accounts[0].Revenue)
	assert.Equal(t, 35, *accounts[0].Revenue)
	require.NotNil(t, accounts[1].Revenue, "empty joins must yield zero, not nil")
	assert.Equal(t, 0, *accounts[1].Revenue)
	require.NotNil(t, accounts[2].Revenue)
	assert.Equal(t, 0, *accounts[2].Revenue)
}

func TestAccountsWithRevenuePreservesOrderAndInput(t *testing.T) {
	data := testDataset()
	accounts := AccountsWithRevenue(data)

	for i, account := range accounts {
		assert.Equal(t, data.Accounts[i].ID, account.ID)
	}
	for _, stored := range data.Accounts {
		assert.Nil(t, stored.Revenue, "aggregation must not mutate stored accounts")
	}
}

func TestAccountsWithRevenueSkipsDanglingCustomerIDs(t *testing.T) {
	data := testDataset()
	// Simulate an ad-hoc customer delete without cascade: c2 disappears
	// but a1 still lists it.
	data.Customers = append(data.Customers[:1], data.Customers[2:]...)

	accounts := AccountsWithRevenue(data)
	require.NotNil(t, accounts[0].Revenue)
	assert.Equal(t, 30, *accounts[0].Revenue)
}

func TestAccountsWithRevenueCountsSharedInvoiceOnce(t *testing.T) {
	data := testDataset()
	// Both of a1's customers reference i1; the union semantics count it
	// a single time.
	data.Customers[1].InvoiceIDs = []string{"i3", "i1"}

	accounts := AccountsWithRevenue(data)
	require.NotNil(t, accounts[0].Revenue)
	assert.Equal(t, 35, *accounts[0].Revenue)
}

func TestCustomersWithSales(t *testing.T) {
	data := testDataset()
	customers := CustomersWithSales(data)

	require.Len(t, customers, 3)
	require.NotNil(t, customers[0].Sales)
	assert.Equal(t, 30, *customers[0].Sales)
	require.NotNil(t, customers[1].Sales)
	assert.Equal(t, 5, *customers[1].Sales)
	require.NotNil(t, customers[2].Sales, "empty invoice list must yield zero, not nil")
	assert.Equal(t, 0, *customers[2].Sales)

	for _, stored := range data.Customers {
		assert.Nil(t, stored.Sales)
	}
}

func TestAggregationIsIdempotent(t *testing.T) {
	data := testDataset()
	assert.Equal(t, AccountsWithRevenue(data), AccountsWithRevenue(data))
	assert.Equal(t, CustomersWithSales(data), CustomersWithSales(data))
}
