package cli

import (
	"fmt"

	"github.com/processwire-skills/linkskills/internal/linker"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(statusCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Create or refresh the skills link in every container (default command)",
	Long: `For every configured container directory, create the directory if needed,
replace an existing "skills" symlink, and link it to the shared skills
directory with a relative path. Containers that fail are reported and the
rest are still processed; the exit code is non-zero if any failed.`,
	Args: cobra.NoArgs,
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	l, ctx, err := newLinker(cmd)
	if err != nil {
		return err
	}

	if _, err := l.Link(ctx); err != nil {
		return &reportedError{err: err}
	}
	return nil
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove the skills symlink from every container",
	Long: `Remove the "skills" symlink from every configured container. Container
directories and the shared skills directory are kept, and entries that are
not symlinks are never removed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, ctx, err := newLinker(cmd)
		if err != nil {
			return err
		}

		if _, err := l.Unlink(ctx); err != nil {
			return &reportedError{err: err}
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the skills link in every container",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, _, err := newLinker(cmd)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		statuses := l.Status()
		bad := 0
		for _, s := range statuses {
			icon := "FAIL"
			switch s.State {
			case linker.StateOK:
				icon = " OK "
			case linker.StateMissing:
				icon = "MISS"
			case linker.StateBlocked:
				icon = "BLCK"
			case linker.StateWrongTarget:
				icon = "DIFF"
			case linker.StateDangling:
				icon = "WARN"
			}
			if s.State != linker.StateOK {
				bad++
			}

			fmt.Fprintf(w, "  [%s] %s", icon, s.Path)
			if s.LinkText != "" {
				fmt.Fprintf(w, " -> %s", s.LinkText)
			}
			if s.Detail != "" {
				fmt.Fprintf(w, " (%s)", s.Detail)
			}
			fmt.Fprintln(w)
		}

		if bad > 0 {
			return &reportedError{err: fmt.Errorf("%d of %d links need attention", bad, len(statuses))}
		}
		return nil
	},
}
