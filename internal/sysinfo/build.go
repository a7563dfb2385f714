package sysinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/hamed0406/envprobe/internal/domain"
)

// Build reports the module, location and revision of this binary.
type Build struct {
	ReadBuildInfo func() (*debug.BuildInfo, bool)
	Executable    func() (string, error)
}

func NewBuild() Build {
	return Build{ReadBuildInfo: debug.ReadBuildInfo, Executable: os.Executable}
}

func (b Build) Run(context.Context) (string, error) {
	bi, ok := b.ReadBuildInfo()
	if !ok || bi == nil {
		return "", domain.NotInstalled("module build info")
	}

	lines := []string{
		field("Module", bi.Main.Path),
		field("Version", bi.Main.Version),
	}
	revision, modified := "unknown", ""
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if modified == "true" {
		revision += " (modified)"
	}

	exe, err := b.Executable()
	if err != nil {
		lines = append(lines, field("Commit Hash", revision))
		return strings.Join(lines, "\n"), fmt.Errorf("locate executable: %w", err)
	}
	lines = append(lines,
		field("Directory", filepath.Dir(exe)),
		field("Commit Hash", revision),
	)
	return strings.Join(lines, "\n"), nil
}
