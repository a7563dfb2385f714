package sysinfo

import (
	"context"
	"os"
	"runtime"
	"strings"

	"go.uber.org/multierr"
)

// OS reports platform and kernel identity. Missing uname output is
// reported as unknown alongside the error.
type OS struct {
	Cmd      Commander
	Hostname func() (string, error)
}

func NewOS(cmd Commander) OS {
	return OS{Cmd: cmd, Hostname: os.Hostname}
}

func (o OS) Run(ctx context.Context) (string, error) {
	var errs error
	value := func(s string, err error) string {
		errs = multierr.Append(errs, err)
		if s = strings.TrimSpace(s); err != nil || s == "" {
			return "unknown"
		}
		return s
	}

	system := value(o.Cmd.Output(ctx, "uname", "-s"))
	release := value(o.Cmd.Output(ctx, "uname", "-r"))
	version := value(o.Cmd.Output(ctx, "uname", "-v"))
	node := value(o.Hostname())

	return strings.Join([]string{
		field("Platform", runtime.GOOS+"-"+release+"-"+runtime.GOARCH),
		field("system", system),
		field("node", node),
		field("release", release),
		field("version", version),
	}, "\n"), errs
}
