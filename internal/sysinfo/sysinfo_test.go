package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamed0406/envprobe/internal/domain"
)

type reply struct {
	out string
	err error
}

// fakeCmd answers by "name arg..." and treats anything else as missing.
type fakeCmd map[string]reply

func (f fakeCmd) Output(_ context.Context, name string, args ...string) (string, error) {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r, ok := f[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	return r.out, r.err
}

func TestCommand_TrimsAndJoinsLines(t *testing.T) {
	cmd := fakeCmd{"uptime": {out: "  10:00  up 3 days \n\n"}}
	out, err := Uptime(cmd).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:00  up 3 days", out)

	cmd = fakeCmd{"hostname -I": {out: "10.0.0.2 \n 172.17.0.1\n"}}
	out, err = HostIPs(cmd).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2\n172.17.0.1", out)
}

func TestCommand_MissingBinary(t *testing.T) {
	_, err := Date(fakeCmd{}).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalCommand)
}

func TestIdentity(t *testing.T) {
	out, err := Identity{}.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "Version")
	assert.Contains(t, out, "Compiler")
}

func TestToolchain_NotInstalled(t *testing.T) {
	_, err := Toolchain{Cmd: fakeCmd{}}.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrDependencyAbsent)
}

func TestToolchain_Installed(t *testing.T) {
	cmd := fakeCmd{
		"go version":    {out: "go version go1.22.3 linux/amd64\n"},
		"go env GOROOT": {out: "/usr/local/go\n"},
	}
	out, err := Toolchain{Cmd: cmd}.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "go1.22.3")
	assert.Contains(t, out, "/usr/local/go")
}

func TestParseGoVersion(t *testing.T) {
	v, err := ParseGoVersion("go1.22.3")
	require.NoError(t, err)
	assert.Equal(t, "1.22.3", v.String())

	v, err = ParseGoVersion("go1.23rc1")
	require.NoError(t, err)
	assert.Equal(t, "rc1", v.Prerelease())

	_, err = ParseGoVersion("devel +abc")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	b := Build{
		ReadBuildInfo: func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Main: debug.Module{Path: "github.com/hamed0406/envprobe", Version: "v1.2.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			}, true
		},
		Executable: func() (string, error) { return "/opt/envprobe/bin/api", nil },
	}
	out, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "/opt/envprobe/bin")
	assert.Contains(t, out, "abc123 (modified)")
}

func TestBuild_NoBuildInfo(t *testing.T) {
	b := Build{ReadBuildInfo: func() (*debug.BuildInfo, bool) { return nil, false }}
	_, err := b.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrDependencyAbsent)
}

func TestOS_PartialFailureKeepsOtherFields(t *testing.T) {
	cmd := fakeCmd{
		"uname -s": {out: "Linux\n"},
		"uname -r": {out: "6.1.0\n"},
		"uname -v": {err: fmt.Errorf("%w: uname exited with 1", domain.ErrExternalCommand)},
	}
	o := OS{Cmd: cmd, Hostname: func() (string, error) { return "", errors.New("no hostname") }}

	out, err := o.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, out, "Linux")
	assert.Contains(t, out, "6.1.0")
	assert.Contains(t, out, "unknown")
}

func TestHardware_PlatformDispatch(t *testing.T) {
	cmd := fakeCmd{
		"uname -p":  {out: "x86_64\n"},
		"lscpu":     {out: "Architecture: x86_64\nCPU(s): 8\n"},
		"sysctl -a": {out: "machdep.cpu.brand_string: Apple M2\nhw.ncpu: 8\nmachdep.cpu.features: FPU\n"},
	}

	out, err := Hardware{Cmd: cmd, Platform: PlatformLinux}.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "CPU(s): 8")

	out, err = Hardware{Cmd: cmd, Platform: PlatformDarwin}.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "Apple M2")
	assert.NotContains(t, out, "hw.ncpu")

	// wmic is absent: tolerated
	out, err = Hardware{Cmd: cmd, Platform: PlatformWindows}.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "x86_64")
}

func TestDetectPlatform(t *testing.T) {
	assert.Equal(t, PlatformLinux, DetectPlatform("linux"))
	assert.Equal(t, PlatformDarwin, DetectPlatform("darwin"))
	assert.Equal(t, PlatformWindows, DetectPlatform("windows"))
	assert.Equal(t, PlatformOther, DetectPlatform("plan9"))
}
