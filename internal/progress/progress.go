// Package progress renders poll ticks on the terminal.
package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"yoho/internal/domain/pullrequest"
	"yoho/internal/poller"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uilive"
	"github.com/gosuri/uitable"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Renderer turns a snapshot into the table shown under the header line.
type Renderer[T any] func(snapshot T) *uitable.Table

// Summary turns a snapshot into one line of plain text.
type Summary[T any] func(snapshot T) string

type Reporter[T any] interface {
	OnTick(poller.Tick[T])
	Stop()
}

func verdictStyle(v poller.Verdict) lipgloss.Style {
	switch v {
	case poller.Success:
		return okStyle
	case poller.Failure:
		return errStyle
	default:
		return pendingStyle
	}
}

func header[T any](title string, t poller.Tick[T]) string {
	verdict := t.Verdict.String()
	if t.Graced {
		verdict += " (retrying)"
	}

	return fmt.Sprintf(
		"%s %s %s",
		titleStyle.Render(title),
		verdictStyle(t.Verdict).Render(verdict),
		dimStyle.Render(fmt.Sprintf("#%d %s", t.Attempt, t.Elapsed.Round(time.Second))),
	)
}

// LiveReporter redraws one terminal region on every tick.
type LiveReporter[T any] struct {
	writer *uilive.Writer
	title  string
	render Renderer[T]
}

func NewLive[T any](out io.Writer, title string, render Renderer[T]) *LiveReporter[T] {
	w := uilive.New()
	w.Out = out
	w.Start()

	return &LiveReporter[T]{writer: w, title: title, render: render}
}

func (r *LiveReporter[T]) OnTick(t poller.Tick[T]) {
	fmt.Fprintln(r.writer, header(r.title, t))
	if r.render != nil {
		if table := r.render(t.Snapshot); table != nil {
			fmt.Fprintln(r.writer, table.String())
		}
	}
}

func (r *LiveReporter[T]) Stop() {
	r.writer.Stop()
}

// PlainReporter writes one line per tick, for output that is not a terminal.
type PlainReporter[T any] struct {
	Out       io.Writer
	Title     string
	Summarize Summary[T]
}

func (r *PlainReporter[T]) OnTick(t poller.Tick[T]) {
	graced := ""
	if t.Graced {
		graced = " (retrying)"
	}
	summary := ""
	if r.Summarize != nil {
		if s := r.Summarize(t.Snapshot); s != "" {
			summary = " " + s
		}
	}
	fmt.Fprintf(r.Out, "%s: attempt %d %s%s%s\n", r.Title, t.Attempt, t.Verdict, graced, summary)
}

func (r *PlainReporter[T]) Stop() {}

// New picks a live reporter for terminals and a plain one otherwise.
func New[T any](out io.Writer, live bool, title string, render Renderer[T], summarize Summary[T]) Reporter[T] {
	if live {
		return NewLive(out, title, render)
	}

	return &PlainReporter[T]{Out: out, Title: title, Summarize: summarize}
}

// Discard drops every tick.
type Discard[T any] struct{}

func (Discard[T]) OnTick(poller.Tick[T]) {}
func (Discard[T]) Stop()                 {}

func PullRequestTable(pr *pullrequest.Entity) *uitable.Table {
	if pr == nil {
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("#", "TITLE", "MERGEABLE", "URL")
	table.AddRow(pr.Number, pr.Title, pr.Mergeable.String(), pr.URL)

	return table
}

func PullRequestSummary(pr *pullrequest.Entity) string {
	if pr == nil {
		return ""
	}

	return fmt.Sprintf("mergeable=%s", pr.Mergeable)
}

func checkStyle(s pullrequest.CheckState) lipgloss.Style {
	switch s {
	case pullrequest.CheckSuccess:
		return okStyle
	case pullrequest.CheckFailure:
		return errStyle
	default:
		return pendingStyle
	}
}

func ChecksTable(set *pullrequest.StatusCheckSet) *uitable.Table {
	if set == nil {
		return nil
	}

	table := uitable.New()
	table.AddRow("CHECK", "STATE")
	if len(set.Checks) == 0 {
		table.AddRow(dimStyle.Render("(no checks reported)"), "")
	}
	for _, c := range set.Checks {
		table.AddRow(c.Context, checkStyle(c.State).Render(string(c.State)))
	}

	return table
}

func ChecksSummary(set *pullrequest.StatusCheckSet) string {
	if set == nil {
		return ""
	}

	s := fmt.Sprintf("state=%s checks=%d", set.State(), len(set.Checks))
	if failed := set.Failed(); len(failed) > 0 {
		s += " failed=" + strings.Join(failed, ",")
	}

	return s
}
