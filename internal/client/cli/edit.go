package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userdesk/internal/client/state"
)

// Add creates a user from interactively entered fields. Validation runs
// locally before the request; on success the new user is prepended to
// the cache so it shows first.
func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}

	data, err := buildUserData(name, email, phone)
	if err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}

	user, err := a.api.Create(ctx, data)
	if err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}

	a.state.ApplyCreated(*user)
	a.notify(state.NoticeSuccess, fmt.Sprintf("user %q created", user.Name))
	return nil
}

// Edit enters edit mode for the given user id. The record is fetched
// from the server rather than the cache, so the edit starts from the
// current values. The pending edit is completed with "save" or
// abandoned with "cancel".
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		a.notify(state.NoticeError, "user id must be a number")
		return err
	}

	if err := a.ensureLoaded(ctx); err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}

	user, err := a.api.Get(ctx, id)
	if err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}
	a.state.ApplyUpdated(*user)

	a.state.StartEditing(id)
	fmt.Fprintf(a.out, "Editing %s <%s>. Type 'save' to submit or 'cancel' to discard.\n", user.Name, user.Email)
	return nil
}

// Save prompts for the fields of the pending edit, showing the current
// values as defaults, and submits the update. Aborted input (EOF at a
// prompt) cancels the edit. Outside edit mode, save creates a user.
func (a *App) Save(ctx context.Context) error {
	if !a.state.IsEditing() {
		return a.Add(ctx)
	}

	user := a.state.FindUser(a.state.EditingUserID)
	if user == nil {
		a.state.CancelEditing()
		a.notify(state.NoticeError, "edited user is no longer in the list")
		return nil
	}

	name, err := GetTextWithDefault(a.reader, "Name", user.Name, a.out)
	if err != nil {
		return a.Cancel(ctx)
	}
	email, err := GetTextWithDefault(a.reader, "Email", user.Email, a.out)
	if err != nil {
		return a.Cancel(ctx)
	}
	phone := ""
	if user.Phone != nil {
		phone = *user.Phone
	}
	phone, err = GetTextWithDefault(a.reader, "Phone", phone, a.out)
	if err != nil {
		return a.Cancel(ctx)
	}

	data, err := buildUserData(name, email, phone)
	if err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}

	updated, err := a.api.Update(ctx, user.ID, data)
	if err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}

	a.state.ApplyUpdated(*updated)
	a.state.CancelEditing()
	a.notify(state.NoticeSuccess, fmt.Sprintf("user %q updated", updated.Name))
	return nil
}

// Cancel leaves edit mode without saving.
func (a *App) Cancel(ctx context.Context) error {
	if !a.state.IsEditing() {
		fmt.Fprintln(a.out, "Nothing to cancel.")
		return nil
	}
	a.state.CancelEditing()
	a.notify(state.NoticeInfo, "edit cancelled")
	return nil
}
