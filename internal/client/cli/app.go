// Package cli implements the interactive terminal client. It keeps a
// local cache of the user list and applies successful mutations to it,
// so the rendered view stays current without refetching after every
// command.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dmitrijs2005/userdesk/internal/client/api"
	"github.com/dmitrijs2005/userdesk/internal/client/config"
	"github.com/dmitrijs2005/userdesk/internal/client/state"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

type App struct {
	config      *config.Config
	api         *api.Client
	state       *state.State
	reader      *bufio.Reader
	out         io.Writer
	Mode        Mode
	interactive bool

	// loaded tracks whether the cache has been populated at least once.
	loaded bool
}

func NewApp(c *config.Config) *App {
	return &App{
		config:      c,
		api:         api.NewClient(c.ServerBaseURL, c.RequestTimeout),
		state:       state.New(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		Mode:        ModeOffline,
		interactive: isTerminal(),
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		fmt.Fprintf(a.out, "Server is %s\n", mode)
	}
}

// StartOnlineStatusWatcher periodically pings the server and flips the
// mode shown in the prompt when reachability changes.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// notify posts a notice to the session state. Notices are printed before
// the next prompt and expire on their own.
func (a *App) notify(kind state.NoticeKind, message string) {
	a.state.Notify(kind, message)
}

// FlushNotices prints the active notices and dismisses them, so each one
// is shown at most once.
func (a *App) FlushNotices() {
	renderNotices(a.out, a.state.ActiveNotices())
	a.state.DismissNotices()
}

// ensureLoaded fetches the user list once, on first use of the cache.
func (a *App) ensureLoaded(ctx context.Context) error {
	if a.loaded {
		return nil
	}
	return a.refresh(ctx)
}

func (a *App) refresh(ctx context.Context) error {
	fmt.Fprintln(a.out, "Loading users...")
	users, err := a.api.List(ctx)
	if err != nil {
		return err
	}
	a.state.SetUsers(users)
	a.loaded = true
	return nil
}
