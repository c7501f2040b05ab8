package models

// User represents a login identity in the system. Users are created once
// at data-generation time and are read-only afterwards.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this to the client
}
