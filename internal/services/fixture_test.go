package services

import (
	"time"

	"github.com/alias8/invoices-demo-be/internal/models"
	"github.com/alias8/invoices-demo-be/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// testDataset builds a small dataset with known aggregates:
// account a1 -> customers c1 (sales 30) and c2 (sales 5), revenue 35;
// account a2 -> customer c3 with no invoices, revenue 0;
// account a3 -> no customers, revenue 0.
func testDataset() *models.Dataset {
	hash, err := bcrypt.GenerateFromPassword([]byte("user0"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	return &models.Dataset{
		Users: []models.User{
			{ID: "u1", Username: "user0", PasswordHash: string(hash)},
			{ID: "u2", Username: "user1", PasswordHash: string(hash)},
		},
		Accounts: []models.Account{
			{ID: "a1", Name: "account0", Description: "first", CustomerIDs: []string{"c1", "c2"}, OwnedBy: "u1"},
			{ID: "a2", Name: "account1", Description: "second", CustomerIDs: []string{"c3"}, OwnedBy: "u1"},
			{ID: "a3", Name: "account2", Description: "third", CustomerIDs: []string{}, OwnedBy: "u2"},
		},
		Customers: []models.Customer{
			{ID: "c1", Name: "customer0", CreatedDate: created, InvoiceIDs: []string{"i1", "i2"}},
			{ID: "c2", Name: "customer1", CreatedDate: created, InvoiceIDs: []string{"i3"}},
			{ID: "c3", Name: "customer2", CreatedDate: created, InvoiceIDs: []string{}},
		},
		Invoices: []models.Invoice{
			{ID: "i1", Description: "invoice 0", PurchasedDate: created, PurchasedPrice: 10},
			{ID: "i2", Description: "invoice 1", PurchasedDate: created, PurchasedPrice: 20},
			{ID: "i3", Description: "invoice 2", PurchasedDate: created, PurchasedPrice: 5},
		},
	}
}

func newTestStore() *session.Store {
	return session.NewStore(testDataset())
}
