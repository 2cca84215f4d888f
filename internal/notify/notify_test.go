package notify

import (
	"testing"

	"yoho/internal/pkg/execshell"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDesktop_Notify(t *testing.T) {
	t.Run("uses notify-send on linux", func(t *testing.T) {
		exec := &execshell.MockExecutor{}
		d := &Desktop{Exec: exec, GOOS: "linux", Enabled: true}

		d.Notify("yo", "pull request created")
		assert.Equal(t, [][]string{{"notify-send", "yo", "pull request created"}}, exec.Started)
	})

	t.Run("uses osascript on darwin", func(t *testing.T) {
		exec := &execshell.MockExecutor{}
		d := &Desktop{Exec: exec, GOOS: "darwin", Enabled: true}

		d.Notify("ho", `checks "passed"`)
		assert.Equal(t, [][]string{{
			"osascript", "-e", `display notification "checks \"passed\"" with title "ho"`,
		}}, exec.Started)
	})

	t.Run("does nothing on other platforms", func(t *testing.T) {
		exec := &execshell.MockExecutor{}
		d := &Desktop{Exec: exec, GOOS: "plan9", Enabled: true}

		d.Notify("ho", "done")
		assert.Empty(t, exec.Started)
	})

	t.Run("does nothing when disabled", func(t *testing.T) {
		exec := &execshell.MockExecutor{}
		d := &Desktop{Exec: exec, GOOS: "linux"}

		d.Notify("ho", "done")
		assert.Empty(t, exec.Started)
	})

	t.Run("swallows failures", func(t *testing.T) {
		d := &Desktop{Exec: &execshell.MockExecutor{ErrorValue: errors.New("no dbus")}, GOOS: "linux", Enabled: true}

		assert.NotPanics(t, func() { d.Notify("ho", "done") })
	})
}

func TestDesktop_Open(t *testing.T) {
	tests := []struct {
		goos     string
		expected []string
	}{
		{"linux", []string{"xdg-open", "https://x/1"}},
		{"darwin", []string{"open", "https://x/1"}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler", "https://x/1"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			exec := &execshell.MockExecutor{}
			(&Desktop{Exec: exec, GOOS: tt.goos}).Open("https://x/1")
			assert.Equal(t, [][]string{tt.expected}, exec.Started)
		})
	}
}
