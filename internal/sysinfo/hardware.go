package sysinfo

import (
	"context"
	"errors"
	"runtime"
	"strings"
)

// Platform selects how CPU details are gathered.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformLinux
	PlatformDarwin
	PlatformWindows
)

// DetectPlatform maps a GOOS value to a Platform.
func DetectPlatform(goos string) Platform {
	switch goos {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformDarwin
	case "windows":
		return PlatformWindows
	}
	return PlatformOther
}

// Hardware reports machine and processor details.
type Hardware struct {
	Cmd      Commander
	Platform Platform
}

func NewHardware(cmd Commander) Hardware {
	return Hardware{Cmd: cmd, Platform: DetectPlatform(runtime.GOOS)}
}

func (h Hardware) Run(ctx context.Context) (string, error) {
	processor := "unknown"
	if out, err := h.Cmd.Output(ctx, "uname", "-p"); err == nil && strings.TrimSpace(out) != "" {
		processor = strings.TrimSpace(out)
	}
	lines := []string{
		field("machine", runtime.GOARCH),
		field("processor", processor),
	}

	extra, err := h.cpuDetails(ctx)
	if errors.Is(err, ErrCommandNotFound) {
		err = nil
	}
	if extra != "" {
		lines = append(lines, extra)
	}
	return strings.Join(lines, "\n"), err
}

func (h Hardware) cpuDetails(ctx context.Context) (string, error) {
	switch h.Platform {
	case PlatformLinux:
		out, err := h.Cmd.Output(ctx, "lscpu")
		return joinLines(out), err
	case PlatformDarwin:
		out, err := h.Cmd.Output(ctx, "sysctl", "-a")
		var keep []string
		for _, l := range strings.Split(out, "\n") {
			if strings.Contains(l, "brand_string") || strings.Contains(l, "features") {
				keep = append(keep, strings.TrimSpace(l))
			}
		}
		return strings.Join(keep, "\n"), err
	case PlatformWindows:
		out, err := h.Cmd.Output(ctx, "wmic", "cpu", "get", "name")
		return joinLines(out), err
	}
	return "", nil
}
