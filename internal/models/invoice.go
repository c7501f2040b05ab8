package models

import "time"

// Invoice is a priced transaction record. Invoices are immutable after
// generation.
type Invoice struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	PurchasedDate  time.Time `json:"purchasedDate"`
	PurchasedPrice int       `json:"purchasedPrice"`
}
