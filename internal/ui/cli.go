package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tzbuddy/internal/config"
	"github.com/javiermolinar/tzbuddy/internal/db"
	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tui"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     team.Repository
	ownsRepo bool // Repository was opened by the app and must be closed
	config   *config.Config
	resolver *tzinfo.Resolver
	root     *cobra.Command
	debug    bool // Enable debug logging
}

// NewApp creates a new CLI application. A nil repo is opened lazily from the
// configured database path.
func NewApp(repo team.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, resolver: tzinfo.NewResolver(nil)}

	a.root = &cobra.Command{
		Use:   "tzbuddy",
		Short: "See your team's hours side by side",
		Long: `Tzbuddy shows every teammate's day as a strip of hours, aligned to
your own timezone, so you can spot when everyone is awake and available.

Run without arguments to open the interactive view.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to "+tui.DebugLogPath)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.memberCmd())
	a.root.AddCommand(a.availCmd())
	a.root.AddCommand(a.dialCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.overlapCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tzbuddy %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the team database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.repo == nil || !a.ownsRepo {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	return err
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteContext runs the CLI application; commands stop their storage and
// LLM calls once ctx is done.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}
