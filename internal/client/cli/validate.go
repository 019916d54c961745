package cli

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/api"
)

// emailPattern matches the server's email check, so obviously invalid
// input is rejected before any network call.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrNameEmailRequired = errors.New("name and email are required")
	ErrInvalidEmail      = errors.New("invalid email")
)

// buildUserData trims the raw inputs and validates them, returning the
// payload for a create or update call. A blank phone is sent as absent.
func buildUserData(name, email, phone string) (api.UserData, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" || email == "" {
		return api.UserData{}, ErrNameEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return api.UserData{}, ErrInvalidEmail
	}

	data := api.UserData{Name: name, Email: email}
	if phone != "" {
		data.Phone = &phone
	}
	return data, nil
}
