package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/dropwatch/internal/client/api"
	"github.com/dmitrijs2005/dropwatch/internal/client/config"
	"github.com/dmitrijs2005/dropwatch/internal/client/notify"
	"github.com/dmitrijs2005/dropwatch/internal/client/session"
	"github.com/dmitrijs2005/dropwatch/internal/client/storage"
	"github.com/dmitrijs2005/dropwatch/internal/filex"
	"github.com/dmitrijs2005/dropwatch/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Session
	api     *api.Client
	console *notify.Console
	reader  *bufio.Reader
	out     io.Writer
	closer  io.Closer
}

// NewApp opens the session database named in c and builds an App talking
// to the configured API, reading commands from in and writing to out.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if err := filex.EnsureParentDir(c.StateDB); err != nil {
		return nil, err
	}

	backend, err := storage.OpenSQLite(ctx, c.StateDB)
	if err != nil {
		log.Error(ctx, "error initializing session database", "path", c.StateDB, "error", err)
		return nil, fmt.Errorf("open session db: %w", err)
	}

	a := newApp(c, backend, log, in, out)
	a.closer = backend
	return a, nil
}

func newApp(c *config.Config, backend storage.Backend, log logging.Logger, in io.Reader, out io.Writer) *App {
	console := notify.NewConsole(out, notify.WithoutBanners())
	sess := session.New(backend, log)

	return &App{
		config:  c,
		log:     log,
		session: sess,
		api: api.New(c.APIBase, sess,
			api.WithTimeout(c.Timeout),
			api.WithSink(console),
			api.WithLogger(log),
		),
		console: console,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to dropwatch (type 'help' for commands)")
	if a.isLoggedIn(ctx) && a.session.Expired(ctx, now()) {
		fmt.Fprintln(a.out, "Stored session has expired, please log in again.")
		a.session.Logout(ctx)
	}
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the session database and pending notifications.
func (a *App) Close() error {
	a.console.Close()
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// runApp runs fn and closes a. The close error is returned when fn
// succeeded.
func runApp(ctx context.Context, a *App, args []string, fn func(context.Context, *App, []string) error) (err error) {
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close state db: %w", cerr)
		}
	}()
	return fn(ctx, a, args)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

// status is the prompt suffix: "(teacher 7)" when logged in.
func (a *App) status(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return ""
	}
	u, _ := a.currentUser(ctx)
	return fmt.Sprintf("(%s %s)", a.session.Role(ctx), u.ID)
}
