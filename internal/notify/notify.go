// Package notify tells the user on the desktop that a step finished.
package notify

import (
	"fmt"
	"runtime"
	"strconv"

	"yoho/internal/pkg/execshell"

	"github.com/rs/zerolog/log"
)

type Notifier interface {
	Notify(title, message string)
}

// Desktop shows notifications and opens links with the platform's own tools.
// Every call is fire-and-forget: failures are logged and never returned.
type Desktop struct {
	Exec    execshell.Executor
	GOOS    string
	Enabled bool
}

func New(enabled bool) *Desktop {
	return &Desktop{
		Exec:    execshell.New(),
		GOOS:    runtime.GOOS,
		Enabled: enabled,
	}
}

func (d *Desktop) Notify(title, message string) {
	if !d.Enabled {
		return
	}

	var err error
	switch d.GOOS {
	case "linux":
		err = d.Exec.Start("notify-send", title, message)
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(message), strconv.Quote(title))
		err = d.Exec.Start("osascript", "-e", script)
	default:
		log.Debug().Str("os", d.GOOS).Msg("desktop notifications are not supported")
		return
	}
	if err != nil {
		log.Debug().Err(err).Msg("notification failed")
	}
}

// Open opens url in the default browser.
func (d *Desktop) Open(url string) {
	var err error
	switch d.GOOS {
	case "linux":
		err = d.Exec.Start("xdg-open", url)
	case "windows":
		err = d.Exec.Start("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		err = d.Exec.Start("open", url)
	default:
		err = fmt.Errorf("unsupported platform %s", d.GOOS)
	}
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("cannot open browser")
	}
}
