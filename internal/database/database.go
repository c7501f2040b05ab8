package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the snapshot schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT UNIQUE,
		password_hash TEXT
	);

	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		owned_by TEXT NOT NULL,
		-- Store the ordered customer-id list as JSON text
		customer_ids_json TEXT NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS customers (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		created_date DATETIME NOT NULL,
		invoice_ids_json TEXT NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS invoices (
		id TEXT NOT NULL PRIMARY KEY,
		description TEXT,
		purchased_date DATETIME NOT NULL,
		purchased_price INTEGER NOT NULL,
		position INTEGER NOT NULL
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
