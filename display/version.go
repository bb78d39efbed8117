package display

import (
	"fmt"
	"runtime/debug"
)

// Version returns a formatted version string for the program. An empty
// version falls back to the module version recorded in build metadata.
func Version(program, version string) (string, error) {
	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "", err
		}
		version = inferred
	}
	if program != "" {
		program = program + " "
	}
	return fmt.Sprintf("%sv%s", program, version), nil
}

// inferVersion attempts to infer the caller's module version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("unable to read build info")
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}
	return "", fmt.Errorf("no version info found in build metadata")
}
