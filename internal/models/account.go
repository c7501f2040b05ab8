package models

// Account groups a block of customers and is attributed to a single user.
type Account struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CustomerIDs []string `json:"customerIDs"`
	OwnedBy     string   `json:"ownedBy"`
	// Revenue is computed at read time by the aggregation service and is
	// only present on list responses. Zero is a valid value, so a pointer
	// distinguishes "not computed" from "no revenue".
	Revenue *int `json:"revenue,omitempty"`
}
