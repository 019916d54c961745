// Package state holds the client-side session state: the cached user
// list, the active search term, the edit and delete selections, and
// short-lived notices.
//
// The cache is the single source of truth for rendering. Mutations that
// succeed on the server are applied locally (prepend on create, replace
// on update, remove on delete) so the visible list stays current without
// refetching.
package state

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// NoticeTTL is how long a notice stays visible before expiring.
const NoticeTTL = 5 * time.Second

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeInfo
)

type Notice struct {
	Kind    NoticeKind
	Message string
	posted  time.Time
}

type State struct {
	Users      []models.User
	SearchTerm string

	// EditingUserID is the id of the user being edited, 0 when not editing.
	EditingUserID int64
	// UserToDelete is the id pending delete confirmation, 0 when none.
	UserToDelete int64

	notices []Notice

	// now is a clock seam for tests.
	now func() time.Time
}

func New() *State {
	return &State{now: time.Now}
}

// SetUsers replaces the whole cache, as after a list fetch.
func (s *State) SetUsers(users []models.User) {
	s.Users = users
}

// ApplyCreated prepends the new user so it shows first, matching the
// newest-first list order.
func (s *State) ApplyCreated(u models.User) {
	s.Users = append([]models.User{u}, s.Users...)
}

// ApplyUpdated replaces the cached user with the same id in place.
func (s *State) ApplyUpdated(u models.User) {
	for i := range s.Users {
		if s.Users[i].ID == u.ID {
			s.Users[i] = u
			return
		}
	}
}

// ApplyDeleted removes the user with the given id from the cache.
func (s *State) ApplyDeleted(id int64) {
	for i := range s.Users {
		if s.Users[i].ID == id {
			s.Users = append(s.Users[:i], s.Users[i+1:]...)
			return
		}
	}
}

// FindUser returns the cached user with the given id, nil when absent.
func (s *State) FindUser(id int64) *models.User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// Filtered returns the users matching the current search term. The term
// is matched case-insensitively as a substring of name, email or phone.
// An empty term returns the full cache. The cache itself is never
// modified by filtering.
func (s *State) Filtered() []models.User {
	term := strings.ToLower(strings.TrimSpace(s.SearchTerm))
	if term == "" {
		return s.Users
	}

	matched := []models.User{}
	for _, u := range s.Users {
		if matchesTerm(&u, term) {
			matched = append(matched, u)
		}
	}
	return matched
}

func matchesTerm(u *models.User, term string) bool {
	if strings.Contains(strings.ToLower(u.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(u.Email), term) {
		return true
	}
	if u.Phone != nil && strings.Contains(strings.ToLower(*u.Phone), term) {
		return true
	}
	return false
}

// StartEditing enters edit mode for the given user id and cancels any
// pending delete confirmation.
func (s *State) StartEditing(id int64) {
	s.EditingUserID = id
	s.UserToDelete = 0
}

func (s *State) CancelEditing() {
	s.EditingUserID = 0
}

func (s *State) IsEditing() bool {
	return s.EditingUserID != 0
}

// Notify posts a notice. Notices expire on their own after NoticeTTL.
func (s *State) Notify(kind NoticeKind, message string) {
	s.notices = append(s.notices, Notice{Kind: kind, Message: message, posted: s.now()})
}

// ActiveNotices drops expired notices and returns the rest.
func (s *State) ActiveNotices() []Notice {
	cutoff := s.now().Add(-NoticeTTL)
	active := s.notices[:0]
	for _, n := range s.notices {
		if n.posted.After(cutoff) {
			active = append(active, n)
		}
	}
	s.notices = active
	return active
}

// DismissNotices clears all notices immediately, as when the user acts
// before a notice expires.
func (s *State) DismissNotices() {
	s.notices = nil
}
