// Package execshell runs external programs.
package execshell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

type Executor interface {
	Execute(ctx context.Context, command string, args ...string) (string, error)
	// Start launches command without waiting for it.
	Start(command string, args ...string) error
}

// ExecError is a command that ran and exited non-zero, or could not run at all
// (ExitCode -1).
type ExecError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	cmdStr := e.Command
	if len(e.Args) > 0 {
		cmdStr = fmt.Sprintf("%s %s", e.Command, strings.Join(e.Args, " "))
	}

	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "no output"
	}

	return fmt.Sprintf("command '%s' failed with exit code %d: %s", cmdStr, e.ExitCode, msg)
}

type OS struct{}

func New() *OS {
	return &OS{}
}

func (OS) Execute(ctx context.Context, command string, args ...string) (string, error) {
	log.Debug().Str("command", command).Strs("args", args).Msg("exec")

	cmd := exec.CommandContext(ctx, command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		exitCode := -1
		if exitError, ok := err.(*exec.ExitError); ok {
			exitCode = exitError.ExitCode()
		}
		stderrText := stderr.String()
		if exitCode == -1 && stderrText == "" {
			stderrText = err.Error()
		}

		return "", &ExecError{
			Command:  command,
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderrText,
		}
	}

	return stdout.String(), nil
}

func (OS) Start(command string, args ...string) error {
	cmd := exec.Command(command, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

type MockExecutor struct {
	ExecuteFunc func(ctx context.Context, command string, args ...string) (string, error)
	ErrorValue  error
	Started     [][]string
}

func (m *MockExecutor) Execute(ctx context.Context, command string, args ...string) (string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, command, args...)
	}

	return "", m.ErrorValue
}

func (m *MockExecutor) Start(command string, args ...string) error {
	m.Started = append(m.Started, append([]string{command}, args...))
	return m.ErrorValue
}
