// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the display identity of the account owner as returned by the
// remote API. It is never used for authorization decisions on the client.
type User struct {
	// ID is the server-assigned account identifier.
	ID int64 `json:"id"`

	// Username is the display name chosen at registration.
	Username string `json:"username"`

	// Email is the login identifier. Optional in API responses.
	Email string `json:"email,omitempty"`
}

// IsZero reports whether u carries no identity at all.
func (u User) IsZero() bool {
	return u.ID == 0 && u.Username == "" && u.Email == ""
}

// Credentials holds the values the user types into the login and
// registration forms.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// Session is the pair of bearer token and user identity. Both halves are set
// and cleared together; a session missing either half is unauthenticated.
type Session struct {
	// Token is the opaque bearer credential.
	Token string

	// User is the identity the token was issued for.
	User User
}

// IsAuthenticated reports whether both the token and the user are present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User.ID != 0
}
