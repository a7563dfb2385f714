// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/hamed0406/envprobe/internal/config"
	"github.com/hamed0406/envprobe/internal/endpoints"
	"github.com/hamed0406/envprobe/internal/probe"
	"github.com/hamed0406/envprobe/internal/sysinfo"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	if err := config.LoadDotEnv(""); err != nil {
		fail(err.Error())
	}
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		fail("config: " + err.Error())
	}
	ok(fmt.Sprintf("API_ADDR=%s TIMEOUT_SECONDS=%d", cfg.Addr, cfg.TimeoutSeconds))
	if cfg.TimeoutSeconds == 0 {
		warn("TIMEOUT_SECONDS=0: fetches to unreachable endpoints may block a request indefinitely.")
	}

	reg := endpoints.Default()
	if cfg.EndpointsFile != "" {
		var err error
		if reg, err = endpoints.LoadFile(reg, cfg.EndpointsFile); err != nil {
			fail("ENDPOINTS_FILE: " + err.Error())
		}
		ok("ENDPOINTS_FILE=" + cfg.EndpointsFile)
	}
	for _, region := range probe.NormalizeRegions(cfg.Regions) {
		if _, known := reg.OverlayFor(region); !known {
			warn(fmt.Sprintf("REGION %s has no specific endpoints; only global sites will be tested. Known regions: %s",
				region, strings.Join(reg.Regions(), ", ")))
		} else {
			ok("REGION " + region)
		}
	}

	required := []string{"uptime", "hostname", "date", "uname"}
	switch sysinfo.DetectPlatform(runtime.GOOS) {
	case sysinfo.PlatformLinux:
		required = append(required, "lscpu")
	case sysinfo.PlatformDarwin:
		required = append(required, "sysctl")
	case sysinfo.PlatformWindows:
		required = append(required, "wmic")
	}
	for _, bin := range required {
		if sysinfo.BinaryExists(bin) {
			ok(bin + " found")
		} else {
			warn(bin + " not found: its report section will show a command failure.")
		}
	}
	if !sysinfo.BinaryExists("go") {
		warn("go not found: the toolchain section will report it as not installed.")
	}

	ok("preflight passed")
}
