package linker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/processwire-skills/linkskills/internal/config"
	"github.com/processwire-skills/linkskills/internal/integrations"
	"github.com/processwire-skills/linkskills/internal/logger"
	"github.com/processwire-skills/linkskills/internal/platform"
	"github.com/processwire-skills/linkskills/internal/presenter"
)

// Presenter receives result lines as containers are processed.
type Presenter interface {
	Line(status presenter.Status, msg string)
	Summary(msg string)
}

// Linker reconciles the links of one repository.
type Linker struct {
	root   string
	target string
	cfg    *config.Config
	out    Presenter
}

// New returns a Linker for the repository at root. A nil presenter discards output.
func New(root string, cfg *config.Config, out Presenter) (*Linker, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = presenter.NewWithOptions(io.Discard, io.Discard, presenter.ColorNever)
	}

	return &Linker{
		root:   abs,
		target: filepath.Join(abs, filepath.FromSlash(cfg.Target)),
		cfg:    cfg,
		out:    out,
	}, nil
}

// Root returns the absolute repository root.
func (l *Linker) Root() string { return l.root }

// Target returns the absolute path of the shared skills directory.
func (l *Linker) Target() string { return l.target }

// entry holds the resolved paths for one container.
type entry struct {
	container string
	dir       string
	link      string
	display   string
}

func (l *Linker) entries() []entry {
	entries := make([]entry, 0, len(l.cfg.Containers))
	for _, c := range l.cfg.Containers {
		dir := filepath.Join(l.root, filepath.FromSlash(c))
		entries = append(entries, entry{
			container: c,
			dir:       dir,
			link:      filepath.Join(dir, l.cfg.LinkName),
			display:   path.Join(filepath.ToSlash(c), l.cfg.LinkName),
		})
	}
	return entries
}

// Link creates or refreshes the link in every container, in list order. A
// failing container is reported and the remaining containers are still
// processed. The returned error aggregates every failure.
func (l *Linker) Link(ctx context.Context) (*Report, error) {
	log := logger.G(ctx).WithField("target", l.target)

	if _, err := os.Stat(l.target); errors.Is(err, os.ErrNotExist) {
		log.Warn("shared skills directory does not exist; links will dangle until it is created")
	}

	report := &Report{}
	for _, e := range l.entries() {
		if err := ctx.Err(); err != nil {
			report.Interrupted = err
			break
		}

		res := l.linkOne(ctx, e)
		report.Results = append(report.Results, res)

		if res.Err != nil {
			l.out.Line(presenter.StatusFailed, res.Err.Error())
			continue
		}
		l.out.Line(presenter.StatusCreated, fmt.Sprintf("%s -> %s", res.Path, res.LinkText))
	}

	l.out.Summary(report.LinkSummary())
	return report, report.Err()
}

func (l *Linker) linkOne(ctx context.Context, e entry) Result {
	log := logger.G(ctx).WithField("container", e.container)
	if name, ok := integrations.ToolForContainer(e.container); ok {
		if tool, ok := integrations.Lookup(name); ok {
			log = log.WithField("tool", tool.DisplayName)
		}
	}
	res := Result{Container: e.container, Path: e.display}

	fail := func(kind FailureKind, err error) Result {
		log.WithError(err).WithField("kind", kind).Debug("container failed")
		res.Action = ActionFailed
		res.Err = &LinkError{Container: e.container, Path: e.display, Kind: kind, Err: err}
		return res
	}

	if err := platform.EnsureDir(e.dir); err != nil {
		return fail(DirectoryCreation, err)
	}

	kind, err := platform.Inspect(e.link)
	if err != nil {
		return fail(LinkCreation, err)
	}
	switch kind {
	case platform.KindSymlink:
		log.Debug("removing existing symlink")
		if err := platform.RemoveSymlink(e.link); err != nil {
			return fail(LinkCreation, fmt.Errorf("removing stale link: %w", err))
		}
	case platform.KindDir, platform.KindFile:
		return fail(BlockedLinkPath, fmt.Errorf("found a %s", kind))
	}

	// The OS resolves link text from the real directory holding the link,
	// so a symlinked container needs the relative path between real paths.
	realDir, err := platform.RealPath(e.dir)
	if err != nil {
		return fail(LinkCreation, err)
	}
	realTarget, err := platform.RealPath(l.target)
	if err != nil {
		return fail(LinkCreation, err)
	}
	if realDir != e.dir {
		log.WithField("real_dir", realDir).Debug("container resolves through a symlink")
	}

	text, err := platform.RelativeTarget(realDir, realTarget)
	if err != nil {
		return fail(LinkCreation, err)
	}
	if err := platform.CreateSymlink(text, e.link); err != nil {
		return fail(LinkCreation, err)
	}

	log.WithField("link", text).Debug("link created")
	res.Action = ActionCreated
	res.LinkText = filepath.ToSlash(text)
	return res
}
