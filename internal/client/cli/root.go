package cli

import (
	"context"
	"io"
	"strings"

	"github.com/dmitrijs2005/dropwatch/internal/client/config"
	"github.com/dmitrijs2005/dropwatch/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the dropwatch command tree. args are the command line
// arguments without the program name; they are consulted for the config
// file, which has to be read before the flags override it. Logs go to
// stderr.
func NewRootCmd(args []string, stderr io.Writer) (*cobra.Command, error) {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return nil, err
	}

	var (
		log   logging.Logger = logging.Nop()
		flush                = func() {}
	)

	// withApp runs fn with an App opened for the duration of one command.
	withApp := func(fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := NewApp(ctx, cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runApp(ctx, a, args, fn)
		}
	}

	repl := withApp(func(ctx context.Context, a *App, _ []string) error {
		a.Run(ctx)
		return nil
	})

	root := &cobra.Command{
		Use:           "dropwatch",
		Short:         "Terminal client for the student dropout dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			l, f, err := newLogger(cfg.LogFormat, stderr)
			if err != nil {
				return err
			}
			log, flush = l, f
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			flush()
		},
		RunE: repl,
	}
	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive shell (default)",
			Args:  cobra.NoArgs,
			RunE:  repl,
		},
		&cobra.Command{
			Use:   "login",
			Short: "Log in and store the session",
			Args:  cobra.NoArgs,
			RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
				return a.Login(ctx)
			}),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Clear the stored session",
			Args:  cobra.NoArgs,
			RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
				return a.Logout(ctx)
			}),
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the stored identity",
			Args:  cobra.NoArgs,
			RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
				return a.Whoami(ctx)
			}),
		},
		&cobra.Command{
			Use:     "dashboard",
			Aliases: []string{"d"},
			Short:   "Show the dashboard for the logged-in role",
			Args:    cobra.NoArgs,
			RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
				return a.Dashboard(ctx)
			}),
		},
		&cobra.Command{
			Use:   "get <path>",
			Short: "Print the response of an API path",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(ctx context.Context, a *App, args []string) error {
				return a.Get(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "health",
			Short: "Check the API and its database",
			Args:  cobra.NoArgs,
			RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
				return a.Health(ctx)
			}),
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show system statistics",
			Args:  cobra.NoArgs,
			RunE: withApp(func(ctx context.Context, a *App, _ []string) error {
				return a.Stats(ctx)
			}),
		},
		&cobra.Command{
			Use:   "recs [text]",
			Short: "Render recommendation text as a list",
			RunE: withApp(func(ctx context.Context, a *App, args []string) error {
				return a.Recs(ctx, strings.Join(args, " "))
			}),
		},
	)

	return root, nil
}
