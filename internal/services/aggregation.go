package services

import "github.com/alias8/invoices-demo-be/internal/models"

// AccountsWithRevenue computes, for each account, the sum of purchase
// prices across every invoice reachable through the account's customers.
// Results are shallow copies of the stored accounts with Revenue attached;
// the dataset itself is never mutated. Output preserves account order.
// Customer ids that no longer resolve (deleted customers) are skipped, and
// an invoice referenced twice counts once.
func AccountsWithRevenue(data *models.Dataset) []models.Account {
	prices := invoicePriceIndex(data)

	customersByID := make(map[string]int, len(data.Customers))
	for i, c := range data.Customers {
		customersByID[c.ID] = i
	}

	out := make([]models.Account, len(data.Accounts))
	for i, account := range data.Accounts {
		revenue := 0
		seen := make(map[string]struct{})
		for _, customerID := range account.CustomerIDs {
			ci, ok := customersByID[customerID]
			if !ok {
				continue
			}
			for _, invoiceID := range data.Customers[ci].InvoiceIDs {
				if _, dup := seen[invoiceID]; dup {
					continue
				}
				seen[invoiceID] = struct{}{}
				revenue += prices[invoiceID]
			}
		}
		account.Revenue = &revenue
		out[i] = account
	}
	return out
}

// CustomersWithSales computes each customer's sales total, the sum of
// purchase prices over the customer's invoice list. Same copy, ordering
// and zero-value semantics as AccountsWithRevenue.
func CustomersWithSales(data *models.Dataset) []models.Customer {
	prices := invoicePriceIndex(data)

	out := make([]models.Customer, len(data.Customers))
	for i, customer := range data.Customers {
		sales := 0
		seen := make(map[string]struct{})
		for _, invoiceID := range customer.InvoiceIDs {
			if _, dup := seen[invoiceID]; dup {
				continue
			}
			seen[invoiceID] = struct{}{}
			sales += prices[invoiceID]
		}
		customer.Sales = &sales
		out[i] = customer
	}
	return out
}

// invoicePriceIndex builds the invoice id -> price lookup used by both
// aggregations, replacing a nested scan per entity. Unknown ids resolve to
// zero, which is what summing over a missing invoice should contribute.
func invoicePriceIndex(data *models.Dataset) map[string]int {
	prices := make(map[string]int, len(data.Invoices))
	for _, inv := range data.Invoices {
		prices[inv.ID] = inv.PurchasedPrice
	}
	return prices
}
