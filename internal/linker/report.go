package linker

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Action is what happened to one container.
type Action string

const (
	ActionCreated Action = "created"
	ActionRemoved Action = "removed"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// Result is the outcome for one container.
type Result struct {
	Container string
	Path      string // display path of the link, e.g. ".claude/skills"
	LinkText  string
	Action    Action
	Err       *LinkError
}

// Report collects the results of one Link or Unlink pass, in list order.
type Report struct {
	Results []Result

	// Interrupted is set when the context was cancelled before every
	// container was processed.
	Interrupted error
}

func (r *Report) count(a Action) int {
	n := 0
	for _, res := range r.Results {
		if res.Action == a {
			n++
		}
	}
	return n
}

// Created returns the number of links created.
func (r *Report) Created() int { return r.count(ActionCreated) }

// Removed returns the number of links removed.
func (r *Report) Removed() int { return r.count(ActionRemoved) }

// Failed returns the number of containers that failed.
func (r *Report) Failed() int { return r.count(ActionFailed) }

// Failures returns the error of every failed container.
func (r *Report) Failures() []*LinkError {
	var errs []*LinkError
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errs
}

// Err aggregates every failure, or returns nil when the pass was clean.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, e := range r.Failures() {
		result = multierror.Append(result, e)
	}
	if r.Interrupted != nil {
		result = multierror.Append(result, r.Interrupted)
	}
	return result.ErrorOrNil()
}

func summary(verb string, done, failed int) string {
	if failed == 0 {
		return printer.Sprintf("Done! %s %d symlinks.", verb, done)
	}
	return printer.Sprintf("Done! %s %d symlinks, %d failed.", verb, done, failed)
}

// LinkSummary is the closing line of a Link pass.
func (r *Report) LinkSummary() string { return summary("Created", r.Created(), r.Failed()) }

// UnlinkSummary is the closing line of an Unlink pass.
func (r *Report) UnlinkSummary() string { return summary("Removed", r.Removed(), r.Failed()) }
