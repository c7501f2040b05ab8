package services

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alias8/invoices-demo-be/internal/models"
)

// SnapshotServiceProvider defines the interface for snapshot persistence.
type SnapshotServiceProvider interface {
	Save(data *models.Dataset) error
	Load() (*models.Dataset, error)
}

// SnapshotService persists the generated dataset to the database and loads
// it back at process start. List-valued fields are stored as JSON text
// columns; the position column preserves generation order.
type SnapshotService struct {
	db *sql.DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *sql.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// Save replaces any previous snapshot with the given dataset in a single
// transaction.
func (s *SnapshotService) Save(data *models.Dataset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"users", "accounts", "customers", "invoices"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, u := range data.Users {
		if _, err := tx.Exec("INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)",
			u.ID, u.Username, u.PasswordHash); err != nil {
			return err
		}
	}

	for i, a := range data.Accounts {
		customerIDs, err := json.Marshal(a.CustomerIDs)
		if err != nil {
			return err
		}
		if _, err := tx.Exec("INSERT INTO accounts(id, name, description, owned_by, customer_ids_json, position) VALUES(?, ?, ?, ?, ?, ?)",
			a.ID, a.Name, a.Description, a.OwnedBy, string(customerIDs), i); err != nil {
			return err
		}
	}

	for i, c := range data.Customers {
		invoiceIDs, err := json.Marshal(c.InvoiceIDs)
		if err != nil {
			return err
		}
		if _, err := tx.Exec("INSERT INTO customers(id, name, created_date, invoice_ids_json, position) VALUES(?, ?, ?, ?, ?)",
			c.ID, c.Name, c.CreatedDate, string(invoiceIDs), i); err != nil {
			return err
		}
	}

	for i, inv := range data.Invoices {
		if _, err := tx.Exec("INSERT INTO invoices(id, description, purchased_date, purchased_price, position) VALUES(?, ?, ?, ?, ?)",
			inv.ID, inv.Description, inv.PurchasedDate, inv.PurchasedPrice, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads the full snapshot back in generation order. Returns
// ErrSnapshotMissing when no users exist, which means the generator has
// never run against this database.
func (s *SnapshotService) Load() (*models.Dataset, error) {
	data := &models.Dataset{}

	rows, err := s.db.Query("SELECT id, username, password_hash FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, err
		}
		data.Users = append(data.Users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(data.Users) == 0 {
		return nil, fmt.Errorf("no users in %s: %w", "database", ErrSnapshotMissing)
	}

	accRows, err := s.db.Query("SELECT id, name, description, owned_by, customer_ids_json FROM accounts ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer accRows.Close()
	for accRows.Next() {
		var a models.Account
		var customerIDs string
		if err := accRows.Scan(&a.ID, &a.Name, &a.Description, &a.OwnedBy, &customerIDs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(customerIDs), &a.CustomerIDs); err != nil {
			return nil, fmt.Errorf("corrupt customer id list for account %s: %w", a.ID, err)
		}
		data.Accounts = append(data.Accounts, a)
	}
	if err := accRows.Err(); err != nil {
		return nil, err
	}

	custRows, err := s.db.Query("SELECT id, name, created_date, invoice_ids_json FROM customers ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer custRows.Close()
	for custRows.Next() {
		var c models.Customer
		var invoiceIDs string
		if err := custRows.Scan(&c.ID, &c.Name, &c.CreatedDate, &invoiceIDs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(invoiceIDs), &c.InvoiceIDs); err != nil {
			return nil, fmt.Errorf("corrupt invoice id list for customer %s: %w", c.ID, err)
		}
		data.Customers = append(data.Customers, c)
	}
	if err := custRows.Err(); err != nil {
		return nil, err
	}

	invRows, err := s.db.Query("SELECT id, description, purchased_date, purchased_price FROM invoices ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer invRows.Close()
	for invRows.Next() {
		var inv models.Invoice
		if err := invRows.Scan(&inv.ID, &inv.Description, &inv.PurchasedDate, &inv.PurchasedPrice); err != nil {
			return nil, err
		}
		data.Invoices = append(data.Invoices, inv)
	}
	if err := invRows.Err(); err != nil {
		return nil, err
	}

	return data, nil
}
