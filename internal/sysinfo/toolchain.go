package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/hamed0406/envprobe/internal/domain"
)

// Toolchain reports the go command found on PATH, if any.
type Toolchain struct {
	Cmd Commander
}

func (t Toolchain) Run(ctx context.Context) (string, error) {
	out, err := t.Cmd.Output(ctx, "go", "version")
	if errors.Is(err, ErrCommandNotFound) {
		return "", domain.NotInstalled("go toolchain")
	}
	if err != nil {
		return "", err
	}

	raw := goVersionField(out)
	lines := []string{field("Version", raw)}
	if v, err := ParseGoVersion(raw); err == nil {
		if rv, err := ParseGoVersion(runtime.Version()); err == nil {
			same := v.Major() == rv.Major() && v.Minor() == rv.Minor()
			lines = append(lines, field("Runtime match", fmt.Sprintf("%t", same)))
		}
	}

	root, err := t.Cmd.Output(ctx, "go", "env", "GOROOT")
	if err != nil {
		return strings.Join(lines, "\n"), err
	}
	lines = append(lines, field("Directory", strings.TrimSpace(root)))
	return strings.Join(lines, "\n"), nil
}

// goVersionField picks "go1.22.3" out of "go version go1.22.3 linux/amd64".
func goVersionField(out string) string {
	f := strings.Fields(out)
	if len(f) >= 3 && f[0] == "go" && f[1] == "version" {
		return f[2]
	}
	return strings.TrimSpace(out)
}

var goVersionRe = regexp.MustCompile(`^go(\d+(?:\.\d+){0,2})((?:rc|beta)\d+)?`)

// ParseGoVersion parses Go release names such as go1.22.3 or go1.23rc1.
func ParseGoVersion(s string) (*semver.Version, error) {
	m := goVersionRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, fmt.Errorf("not a go release: %q", s)
	}
	v := m[1]
	if m[2] != "" {
		v += "-" + m[2]
	}
	return semver.NewVersion(v)
}
