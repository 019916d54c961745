// Package models holds the server-side row models.
package models

import "time"

// User represents a row in the "users" table.
//
// Phone is a pointer so that an absent phone serializes as JSON null,
// matching the wire contract. ID and CreatedAt are assigned by the database
// and never change afterwards.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
