// Package cli provides the Cobra command tree for verline.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tbckr/verline/internal/config"
	"github.com/tbckr/verline/internal/version"
)

// newRootCmd builds the top-level Cobra command for verline.
// assemble is called at most once; its rendered line is shared by the
// --version flag, the version subcommand and the log banner.
// Callers must set stdout/stderr via cmd.SetOut / cmd.SetErr before Execute.
func newRootCmd(assemble func() version.Info) *cobra.Command {
	info := sync.OnceValue(assemble)
	line := version.Memo(info)

	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// Cobra only executes the innermost PersistentPreRunE in the command
	// chain, so subcommands must not define their own.
	d := deps{info: info, line: line}

	cmd := &cobra.Command{
		Use:   "verline",
		Short: "verline prints build version information",
		Long: `verline reports the version it was built as, annotated with the
source commit and Go toolchain when that information was available at
build time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := buildDeps(cmd, cmd.ErrOrStderr(), info, line)
			if err != nil {
				return err
			}
			d = *resolved
			d.logBanner(cmd.Context(), cmd.CommandPath())
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.Version = line()
	cmd.SetVersionTemplate("verline version {{.Version}}\n")

	cmd.AddGroup(&cobra.Group{ID: "utility", Title: "Utility Commands:"})

	cmd.AddCommand(
		newVersionCmd(&d),
		newConfigCmd(&d),
	)

	return cmd
}

// Execute builds the root command and runs it with os.Args.
func Execute(stdout, stderr io.Writer) error {
	cmd := newRootCmd(version.Assemble)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
	info   func() version.Info
	line   func() string
}

// buildDeps resolves config and logger and attaches the version accessors.
func buildDeps(cmd *cobra.Command, stderr io.Writer, info func() version.Info, line func() string) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return &deps{logger: logger, cfg: cfg, info: info, line: line}, nil
}

// logBanner writes the version line to the log. It is emitted at info level
// when the banner setting is on and at debug level otherwise.
func (d *deps) logBanner(ctx context.Context, command string) {
	level := slog.LevelDebug
	if d.cfg.Banner {
		level = slog.LevelInfo
	}
	d.logger.Log(ctx, level, "verline", "version", d.line(), "command", command, "config", d.cfg.ConfigFile)
}
