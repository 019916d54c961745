// Package models holds the client-side view of API resources.
package models

import "time"

// User mirrors the user object of the wire contract.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// PhoneOrDash returns the phone for display, "-" when absent.
func (u *User) PhoneOrDash() string {
	if u.Phone == nil || *u.Phone == "" {
		return "-"
	}
	return *u.Phone
}
