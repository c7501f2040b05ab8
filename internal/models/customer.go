package models

import "time"

// Customer belongs to exactly one account (by inclusion in its customer-id
// list) and references the invoices generated for it.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CreatedDate time.Time `json:"createdDate"`
	InvoiceIDs  []string  `json:"invoiceIDs"`
	// Sales is computed at read time, see Account.Revenue.
	Sales *int `json:"sales,omitempty"`
}
