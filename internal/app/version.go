// Package app wires configuration, the solver and the front ends into the
// polyroots command.
package app

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Build-time variables set via -ldflags, e.g.
//
//	go build -ldflags="-X github.com/agbru/polyroots/internal/app.Version=v1.0.0 -X github.com/agbru/polyroots/internal/app.Commit=abc123"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version, in any position.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// hardwareFMA reports whether math.FMA runs as a single instruction.
// Fused multiply-add changes the last bit of some roots, so it is part of
// the version report.
func hardwareFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64":
		return true
	}
	return false
}

// PrintVersion writes the version report.
func PrintVersion(out io.Writer) {
	info := GetVersionInfo()
	fma := "software"
	if info.HardwareFMA {
		fma = "hardware"
	}
	fmt.Fprintf(out, "polyroots %s\n", info.Version)
	fmt.Fprintf(out, "  Commit:     %s\n", info.Commit)
	fmt.Fprintf(out, "  Built:      %s\n", info.BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", info.GoVersion)
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", info.OS, info.Arch)
	fmt.Fprintf(out, "  FMA:        %s\n", fma)
}

// VersionData is the version report as data.
type VersionData struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	HardwareFMA bool   `json:"hardware_fma"`
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionData {
	return VersionData{
		Version:     Version,
		Commit:      Commit,
		BuildDate:   BuildDate,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		HardwareFMA: hardwareFMA(),
	}
}
