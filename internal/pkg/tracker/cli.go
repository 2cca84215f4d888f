package tracker

import (
	"context"
	"strings"

	"yoho/internal/domain/issue"
	"yoho/internal/errcodes"
	"yoho/internal/pkg/execshell"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const keyPlaceholder = "{key}"

// CLITracker drives an issue tracker through its command line client.
type CLITracker struct {
	Executor   execshell.Executor
	Command    string
	ViewArgs   []string
	DeleteArgs []string
	// TitlePath is the gjson path of the title in JSON view output.
	TitlePath string
}

func expandArgs(args []string, key string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = strings.ReplaceAll(a, keyPlaceholder, key)
	}

	return out
}

func (t *CLITracker) run(ctx context.Context, key string, args []string) (string, error) {
	if t.Command == "" {
		return "", &errcodes.TrackerError{Key: key, Cause: errcodes.ErrTrackerNotConfigured}
	}

	out, err := t.Executor.Execute(ctx, t.Command, expandArgs(args, key)...)
	if err != nil {
		if ctx.Err() != nil {
			return "", errcodes.Cancelled(ctx, err)
		}

		return "", &errcodes.TrackerError{Key: key, Cause: err}
	}

	return out, nil
}

func (t *CLITracker) Get(ctx context.Context, key string) (*issue.Entity, error) {
	out, err := t.run(ctx, key, t.ViewArgs)
	if err != nil {
		return nil, err
	}

	title := parseTitle(out, t.TitlePath)
	if title == "" {
		return nil, &errcodes.TrackerError{Key: key, Cause: errcodes.ErrMissingTitle}
	}
	log.Debug().Str("key", key).Str("title", title).Msg("issue fetched")

	return &issue.Entity{Key: key, Title: title}, nil
}

func (t *CLITracker) Delete(ctx context.Context, key string) error {
	_, err := t.run(ctx, key, t.DeleteArgs)
	return err
}

func parseTitle(out, path string) string {
	trimmed := strings.TrimSpace(out)
	if gjson.Valid(trimmed) && path != "" {
		if res := gjson.Get(trimmed, path); res.Exists() {
			return strings.TrimSpace(res.String())
		}
	}

	for _, line := range strings.Split(trimmed, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}

	return ""
}
