package runtime

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Shim locations the Fleur desktop app provisions when the tools are not on
// PATH already.
func npxShimPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "fleur", "bin", "npx-fleur")
}

func uvxFallbackPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "bin", "uvx")
}

// Resolve maps a catalog runtime label to the command used to launch the
// integration's server. "npx" and "uvx" are resolved against PATH with a
// fallback to the shim locations; any other label is taken as a literal
// command.
func Resolve(runtime string) (string, error) {
	switch runtime {
	case "npx":
		return resolveTool("npx", npxShimPath())
	case "uvx":
		return resolveTool("uvx", uvxFallbackPath())
	default:
		if runtime == "" {
			return "", fmt.Errorf("app declares no runtime")
		}
		return runtime, nil
	}
}

func resolveTool(name, fallback string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	if fallback != "" {
		if _, err := os.Stat(fallback); err == nil {
			return fallback, nil
		}
	}
	return "", fmt.Errorf("%s not found on PATH and no shim at %s", name, fallback)
}
