package linker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/processwire-skills/linkskills/internal/platform"
)

// State is the condition of one container's link.
type State string

const (
	StateOK          State = "ok"
	StateMissing     State = "missing"
	StateBlocked     State = "blocked"
	StateWrongTarget State = "wrong-target"
	StateDangling    State = "dangling"
	StateError       State = "error"
)

// LinkStatus describes one container without modifying anything.
type LinkStatus struct {
	Container string
	Path      string
	State     State
	LinkText  string
	Detail    string
}

// Healthy reports whether every status is StateOK.
func Healthy(statuses []LinkStatus) bool {
	for _, s := range statuses {
		if s.State != StateOK {
			return false
		}
	}
	return true
}

// Status inspects every container's link.
func (l *Linker) Status() []LinkStatus {
	_, targetErr := os.Stat(l.target)
	targetMissing := errors.Is(targetErr, os.ErrNotExist)

	statuses := make([]LinkStatus, 0, len(l.cfg.Containers))
	for _, e := range l.entries() {
		statuses = append(statuses, l.statusOne(e, targetMissing))
	}
	return statuses
}

func (l *Linker) statusOne(e entry, targetMissing bool) LinkStatus {
	st := LinkStatus{Container: e.container, Path: e.display}

	kind, err := platform.Inspect(e.link)
	if err != nil {
		st.State = StateError
		st.Detail = err.Error()
		return st
	}

	switch kind {
	case platform.KindMissing:
		st.State = StateMissing
		if dk, _ := platform.Inspect(e.dir); dk == platform.KindMissing {
			st.Detail = "container directory does not exist"
		} else {
			st.Detail = "link does not exist"
		}
		return st
	case platform.KindDir, platform.KindFile:
		st.State = StateBlocked
		st.Detail = fmt.Sprintf("%s is a %s, not a symlink", e.display, kind)
		return st
	}

	text, err := platform.ReadSymlinkTarget(e.link)
	if err != nil {
		st.State = StateError
		st.Detail = err.Error()
		return st
	}
	st.LinkText = filepath.ToSlash(text)

	resolved, err := platform.ResolveSymlink(e.link)
	if err != nil {
		st.State = StateError
		st.Detail = err.Error()
		return st
	}
	want, err := platform.RealPath(l.target)
	if err != nil {
		st.State = StateError
		st.Detail = err.Error()
		return st
	}
	if resolved != want {
		st.State = StateWrongTarget
		st.Detail = fmt.Sprintf("points to %s", resolved)
		return st
	}

	if targetMissing {
		st.State = StateDangling
		st.Detail = "shared skills directory does not exist"
		return st
	}

	st.State = StateOK
	return st
}
