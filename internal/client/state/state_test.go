package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

func strPtr(s string) *string { return &s }

func sampleUsers() []models.User {
	return []models.User{
		{ID: 3, Name: "Carla Souza", Email: "carla@example.com", Phone: strPtr("11-9999")},
		{ID: 2, Name: "Bruno Lima", Email: "bruno@test.org"},
		{ID: 1, Name: "Ana Silva", Email: "ana@example.com", Phone: strPtr("21-1234")},
	}
}

func TestApplyCreated_Prepends(t *testing.T) {
	s := New()
	s.SetUsers(sampleUsers())

	s.ApplyCreated(models.User{ID: 4, Name: "Duda", Email: "duda@example.com"})

	require.Len(t, s.Users, 4)
	assert.Equal(t, int64(4), s.Users[0].ID)
	assert.Equal(t, int64(3), s.Users[1].ID)
}

func TestApplyUpdated_ReplacesInPlace(t *testing.T) {
	s := New()
	s.SetUsers(sampleUsers())

	s.ApplyUpdated(models.User{ID: 2, Name: "Bruno L.", Email: "bruno@test.org"})

	require.Len(t, s.Users, 3)
	assert.Equal(t, "Bruno L.", s.Users[1].Name)
	assert.Equal(t, int64(2), s.Users[1].ID)
}

func TestApplyUpdated_UnknownIDIsNoop(t *testing.T) {
	s := New()
	s.SetUsers(sampleUsers())

	s.ApplyUpdated(models.User{ID: 99, Name: "Ghost", Email: "g@x.com"})

	assert.Len(t, s.Users, 3)
}

func TestApplyDeleted_RemovesAndKeepsOrder(t *testing.T) {
	s := New()
	s.SetUsers(sampleUsers())

	s.ApplyDeleted(2)

	require.Len(t, s.Users, 2)
	assert.Equal(t, int64(3), s.Users[0].ID)
	assert.Equal(t, int64(1), s.Users[1].ID)
}

func TestFindUser(t *testing.T) {
	s := New()
	s.SetUsers(sampleUsers())

	u := s.FindUser(1)
	require.NotNil(t, u)
	assert.Equal(t, "Ana Silva", u.Name)

	assert.Nil(t, s.FindUser(42))
}

func TestFiltered_EmptyTermReturnsAll(t *testing.T) {
	s := New()
	s.SetUsers(sampleUsers())

	assert.Len(t, s.Filtered(), 3)

	s.SearchTerm = "   "
	assert.Len(t, s.Filtered(), 3)
}

func TestFiltered_MatchesAcrossFields(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{"name case-insensitive", "ANA", []int64{1}},
		{"name substring", "lim", []int64{2}},
		{"email domain", "example.com", []int64{3, 1}},
		{"phone", "21-12", []int64{1}},
		{"no match", "zzz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetUsers(sampleUsers())
			s.SearchTerm = tt.term

			got := s.Filtered()
			ids := []int64{}
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFiltered_DoesNotModifyCache(t *testing.T) {
	s := New()
	s.SetUsers(sampleUsers())
	s.SearchTerm = "ana"

	_ = s.Filtered()

	assert.Len(t, s.Users, 3)
}

func TestFiltered_NilPhoneDoesNotPanic(t *testing.T) {
	s := New()
	s.SetUsers([]models.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}})
	s.SearchTerm = "999"

	assert.Empty(t, s.Filtered())
}

func TestEditing(t *testing.T) {
	s := New()
	assert.False(t, s.IsEditing())

	s.UserToDelete = 7
	s.StartEditing(3)
	assert.True(t, s.IsEditing())
	assert.Equal(t, int64(3), s.EditingUserID)
	assert.Zero(t, s.UserToDelete, "starting an edit cancels a pending delete")

	s.CancelEditing()
	assert.False(t, s.IsEditing())
}

func TestNotices_ExpireAfterTTL(t *testing.T) {
	now := time.Now()
	s := New()
	s.now = func() time.Time { return now }

	s.Notify(NoticeSuccess, "user created")
	require.Len(t, s.ActiveNotices(), 1)

	now = now.Add(NoticeTTL - time.Millisecond)
	require.Len(t, s.ActiveNotices(), 1)

	now = now.Add(2 * time.Millisecond)
	assert.Empty(t, s.ActiveNotices())
}

func TestNotices_Dismiss(t *testing.T) {
	s := New()
	s.Notify(NoticeError, "boom")
	s.Notify(NoticeInfo, "hi")
	require.Len(t, s.ActiveNotices(), 2)

	s.DismissNotices()
	assert.Empty(t, s.ActiveNotices())
}
