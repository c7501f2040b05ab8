package mockdata

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/alias8/invoices-demo-be/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Fixed proportions of the generated snapshot. Customers and invoices are
// derived from the account count, so the partitioning below always divides
// evenly.
const (
	NumUsers            = 2
	NumAccounts         = 5
	CustomersPerAccount = 5
	InvoicesPerCustomer = 10
)

// Generate produces a fully materialized, self-consistent dataset. Each
// account owns a contiguous block of customers and each customer a
// contiguous block of invoices, so the id lists cover the flat collections
// with no gaps and no overlaps. Content (ids, prices, owners) is random;
// the shape is not.
func Generate() (*models.Dataset, error) {
	numCustomers := NumAccounts * CustomersPerAccount
	numInvoices := numCustomers * InvoicesPerCustomer
	now := time.Now().UTC()

	users := make([]models.User, NumUsers)
	for i := range users {
		// Password matches the username (demo credentials), stored hashed.
		plain := fmt.Sprintf("user%d", i)
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for user%d: %w", i, err)
		}
		users[i] = models.User{
			ID:           uuid.New().String(),
			Username:     plain,
			PasswordHash: string(hash),
		}
	}

	invoices := make([]models.Invoice, numInvoices)
	for i := range invoices {
		invoices[i] = models.Invoice{
			ID:             uuid.New().String(),
			Description:    fmt.Sprintf("invoice %d", i),
			PurchasedDate:  now,
			PurchasedPrice: rand.IntN(100),
		}
	}

	customers := make([]models.Customer, numCustomers)
	for i := range customers {
		start := InvoicesPerCustomer * i
		ids := make([]string, InvoicesPerCustomer)
		for j := range ids {
			ids[j] = invoices[start+j].ID
		}
		customers[i] = models.Customer{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("customer%d", i),
			CreatedDate: now,
			InvoiceIDs:  ids,
		}
	}

	accounts := make([]models.Account, NumAccounts)
	for i := range accounts {
		start := CustomersPerAccount * i
		ids := make([]string, CustomersPerAccount)
		for j := range ids {
			ids[j] = customers[start+j].ID
		}
		accounts[i] = models.Account{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("account%d", i),
			Description: fmt.Sprintf("description %v", rand.Float64()),
			CustomerIDs: ids,
			OwnedBy:     users[rand.IntN(NumUsers)].ID,
		}
	}

	return &models.Dataset{
		Users:     users,
		Accounts:  accounts,
		Customers: customers,
		Invoices:  invoices,
	}, nil
}
