package models

import "time"

// Account represents a server-side account entity used for
// authentication and per-account storage isolation. Every manifest and
// record row on the server is scoped to exactly one account.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer.
	AccountID int64 `json:"-"`

	// Login is the unique account login identifier.
	Login string `json:"login"`

	// AuthHash is the HMAC-SHA256 hash of the account password.
	// It must never leave the server.
	AuthHash string `json:"-"`

	// ServiceID is the account's service address, a UUID assigned once at
	// registration. Clients embed it in contact records to refer to each
	// other and use their own to recognise self-records during sync.
	ServiceID string `json:"service_id"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AuthRequest is the JSON body of registration and login requests.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse carries the issued bearer token back to the client. The
// same token is also set in the Authorization response header. ServiceID
// is the account's service address; clients persist it as their self
// identity.
type AuthResponse struct {
	Token     string `json:"token"`
	ServiceID string `json:"serviceId"`
}
