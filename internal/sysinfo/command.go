package sysinfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hamed0406/envprobe/internal/domain"
)

// ErrCommandNotFound means the binary is not on PATH.
var ErrCommandNotFound = fmt.Errorf("%w: command not found", domain.ErrExternalCommand)

// Commander runs an external command and returns its stdout.
type Commander interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// Exec runs commands from PATH. A zero Timeout means the caller's context
// is the only bound.
type Exec struct {
	Timeout time.Duration
}

func NewExec() Exec { return Exec{Timeout: 5 * time.Second} }

func (e Exec) Output(ctx context.Context, name string, args ...string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return stdout.String(), fmt.Errorf("%w: %s timed out after %v", domain.ErrExternalCommand, name, e.Timeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), fmt.Errorf("%w: %s exited with %d: %s",
			domain.ErrExternalCommand, name, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), fmt.Errorf("%w: %s: %v", domain.ErrExternalCommand, name, err)
}

// BinaryExists reports whether name is on PATH.
func BinaryExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// joinLines trims every line of out and drops the empty ones.
func joinLines(out string) string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}

func field(label, value string) string {
	return fmt.Sprintf("%-13s: %s", label, value)
}

// Command is a collaborator that reports the output of one external command.
type Command struct {
	Cmd  Commander
	Name string
	Args []string
}

func (c Command) Run(ctx context.Context) (string, error) {
	out, err := c.Cmd.Output(ctx, c.Name, c.Args...)
	return joinLines(out), err
}

func Uptime(cmd Commander) Command  { return Command{Cmd: cmd, Name: "uptime"} }
func HostIPs(cmd Commander) Command { return Command{Cmd: cmd, Name: "hostname", Args: []string{"-I"}} }
func Date(cmd Commander) Command    { return Command{Cmd: cmd, Name: "date"} }
