// Package platform reports the host platform as a single target string;
// present logs it when the window opens.
package platform

import (
	"fmt"
	"runtime"
)

// DetectCurrent returns the current platform as a "goos_arch" target
// string, the same naming scheme the original build tooling used for
// cross-compile target triples.
func DetectCurrent() (string, error) {
	system := runtime.GOOS
	arch := runtime.GOARCH

	switch system {
	case "darwin", "linux", "windows":
		return fmt.Sprintf("%s_%s", system, arch), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s/%s", system, arch)
	}
}
