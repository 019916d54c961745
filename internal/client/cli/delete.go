package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/state"
)

// Delete removes a user after an explicit confirmation that names the
// user, so the wrong row is not deleted by a mistyped id.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		a.notify(state.NoticeError, "user id must be a number")
		return err
	}

	if err := a.ensureLoaded(ctx); err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}

	user := a.state.FindUser(id)
	if user == nil {
		a.notify(state.NoticeError, fmt.Sprintf("user %d not found", id))
		return nil
	}

	name := user.Name
	a.state.UserToDelete = id
	defer func() { a.state.UserToDelete = 0 }()

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %q <%s>? (yes/no)", name, user.Email), a.out)
	if err != nil {
		return err
	}
	if !isAffirmative(answer) {
		a.notify(state.NoticeInfo, "delete cancelled")
		return nil
	}

	if err := a.api.Delete(ctx, id); err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}

	a.state.ApplyDeleted(id)
	a.notify(state.NoticeSuccess, fmt.Sprintf("user %q deleted", name))
	return nil
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
