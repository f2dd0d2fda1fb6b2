package linker

import (
	"context"
	"fmt"

	"github.com/processwire-skills/linkskills/internal/logger"
	"github.com/processwire-skills/linkskills/internal/platform"
	"github.com/processwire-skills/linkskills/internal/presenter"
)

// Unlink removes the link from every container where it is a symlink.
// Containers themselves are left in place, absent links are skipped, and
// anything that is not a symlink is reported as blocked and left untouched.
func (l *Linker) Unlink(ctx context.Context) (*Report, error) {
	report := &Report{}
	for _, e := range l.entries() {
		if err := ctx.Err(); err != nil {
			report.Interrupted = err
			break
		}

		res := l.unlinkOne(ctx, e)
		report.Results = append(report.Results, res)

		switch res.Action {
		case ActionFailed:
			l.out.Line(presenter.StatusFailed, res.Err.Error())
		case ActionRemoved:
			l.out.Line(presenter.StatusRemoved, res.Path)
		}
	}

	l.out.Summary(report.UnlinkSummary())
	return report, report.Err()
}

func (l *Linker) unlinkOne(ctx context.Context, e entry) Result {
	log := logger.G(ctx).WithField("container", e.container)
	res := Result{Container: e.container, Path: e.display}

	fail := func(kind FailureKind, err error) Result {
		res.Action = ActionFailed
		res.Err = &LinkError{Container: e.container, Path: e.display, Kind: kind, Err: err}
		return res
	}

	kind, err := platform.Inspect(e.link)
	if err != nil {
		return fail(LinkRemoval, err)
	}

	switch kind {
	case platform.KindMissing:
		log.Debug("no link to remove")
		res.Action = ActionSkipped
		return res
	case platform.KindDir, platform.KindFile:
		return fail(BlockedLinkPath, fmt.Errorf("found a %s", kind))
	}

	if text, err := platform.ReadSymlinkTarget(e.link); err == nil {
		res.LinkText = text
	}
	if err := platform.RemoveSymlink(e.link); err != nil {
		return fail(LinkRemoval, err)
	}

	log.Debug("link removed")
	res.Action = ActionRemoved
	return res
}
