package sysinfo

import (
	"context"
	"runtime"
	"strings"
)

// Identity describes the running Go runtime.
type Identity struct{}

func (Identity) Run(context.Context) (string, error) {
	return strings.Join([]string{
		field("Version", runtime.Version()),
		field("Compiler", runtime.Compiler),
		field("Target", runtime.GOOS+"/"+runtime.GOARCH),
	}, "\n"), nil
}
