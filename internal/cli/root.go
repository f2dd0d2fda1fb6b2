package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/processwire-skills/linkskills/internal/branding"
	"github.com/processwire-skills/linkskills/internal/config"
	"github.com/processwire-skills/linkskills/internal/linker"
	"github.com/processwire-skills/linkskills/internal/logger"
	"github.com/processwire-skills/linkskills/internal/presenter"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir    string
	configFile string
	logLevel   string
	logFormat  string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootDir, "root", "", "Repository root (default: current directory)")
	pf.StringVar(&configFile, "config", "", "Config file, relative paths resolve against --root (default: <root>/"+branding.ConfigFile()+")")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` links the shared skills directory (.agents/skills by default) into the
config directory of every supported AI tool, as a relative symlink named "skills".

Run it from the repository root with no arguments. Existing symlinks are
refreshed; anything else already occupying a link path is left untouched and
reported as a failure.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLogLevel(logLevel); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLogFormat(logFormat)
		return nil
	},
	RunE: runLink,
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the run between containers.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// reportedError wraps an error whose details were already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// resolveRoot returns the --root flag or the working directory.
func resolveRoot() (string, error) {
	if rootDir != "" {
		return rootDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// newLinker loads the configuration for the selected root and builds a
// linker that writes to the command's streams.
func newLinker(cmd *cobra.Command) (*linker.Linker, context.Context, error) {
	root, err := resolveRoot()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(root, configFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.CheckRequires(buildVersion); err != nil {
		return nil, nil, err
	}

	out := presenter.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	l, err := linker.New(root, cfg, out)
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	entry := logger.G(ctx).WithField("root", l.Root())
	if cfg.Source != "" {
		entry = entry.WithField("config", cfg.Source)
	}
	entry.WithField("target", l.Target()).
		WithField("containers", cfg.Containers).
		Debug("configuration resolved")

	return l, logger.WithLogger(ctx, entry), nil
}
