package models

// Dataset holds the four collections that make up one working copy of the
// demo data. The canonical copy is generated once and persisted; each
// session mutates its own clone.
type Dataset struct {
	Users     []User     `json:"users"`
	Accounts  []Account  `json:"accounts"`
	Customers []Customer `json:"customers"`
	Invoices  []Invoice  `json:"invoices"`
}

// Clone returns a deep copy of the dataset. Slices of identifiers are
// copied as well, so mutations on the clone never reach the receiver.
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{
		Users:     make([]User, len(d.Users)),
		Accounts:  make([]Account, len(d.Accounts)),
		Customers: make([]Customer, len(d.Customers)),
		Invoices:  make([]Invoice, len(d.Invoices)),
	}
	copy(c.Users, d.Users)
	copy(c.Invoices, d.Invoices)
	for i, a := range d.Accounts {
		a.CustomerIDs = cloneIDs(a.CustomerIDs)
		c.Accounts[i] = a
	}
	for i, cu := range d.Customers {
		cu.InvoiceIDs = cloneIDs(cu.InvoiceIDs)
		c.Customers[i] = cu
	}
	return c
}

// cloneIDs copies an identifier list, preserving nil vs empty so clones
// compare deep-equal to their source.
func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
