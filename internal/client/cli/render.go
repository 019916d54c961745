package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/state"
)

const dateLayout = "2006-01-02 15:04"

// sanitize replaces control characters so server-stored values cannot
// break the table layout or emit terminal escape sequences.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return '?'
		}
		return r
	}, s)
}

// renderUsers prints the given users as a table. An empty slice prints
// the empty-state message instead.
func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCREATED")
	for i := range users {
		u := &users[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			u.ID,
			sanitize(u.Name),
			sanitize(u.Email),
			sanitize(u.PhoneOrDash()),
			u.CreatedAt.Format(dateLayout),
		)
	}
	tw.Flush()
}

func noticePrefix(kind state.NoticeKind) string {
	switch kind {
	case state.NoticeSuccess:
		return "OK"
	case state.NoticeError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func renderNotices(w io.Writer, notices []state.Notice) {
	for _, n := range notices {
		fmt.Fprintf(w, "[%s] %s\n", noticePrefix(n.Kind), sanitize(n.Message))
	}
}
