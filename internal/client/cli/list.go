package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/state"
)

// List renders the cached users through the current search filter,
// fetching the list first if the cache was never populated.
func (a *App) List(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}
	renderUsers(a.out, a.state.Filtered())
	return nil
}

// Search updates the filter term and re-renders the list. An empty term
// clears the filter. The cache itself is untouched.
func (a *App) Search(ctx context.Context, term string) error {
	a.state.SearchTerm = term
	if term == "" {
		fmt.Fprintln(a.out, "Filter cleared.")
	} else {
		fmt.Fprintf(a.out, "Filtering by %q:\n", term)
	}
	return a.List(ctx)
}

// Refresh refetches the list from the server, replacing the cache.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.refresh(ctx); err != nil {
		a.notify(state.NoticeError, err.Error())
		return err
	}
	renderUsers(a.out, a.state.Filtered())
	return nil
}
