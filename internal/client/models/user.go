// Package models defines the data types exchanged with the FundScope
// backend and stored locally by the client.
package models

// UserType classifies an investor account.
type UserType string

const (
	UserTypeNewInvestor      UserType = "new_investor"
	UserTypeExistingInvestor UserType = "existing_investor"
)

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "LOCAL"
	AuthProviderGoogle AuthProvider = "GOOGLE"
)

// User is the identity attached to a session. It is an immutable value:
// constructed once from an auth response and replaced wholesale on every
// login, never field-mutated.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Type         UserType     `json:"type"`
	AuthProvider AuthProvider `json:"authProvider,omitempty"`
}
