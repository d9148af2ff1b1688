package utils

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// SystemOpener opens paths with the desktop's default handler.
type SystemOpener struct{}

func (SystemOpener) Open(ctx context.Context, path string) error {
	name, args := openCommand(runtime.GOOS, path)
	if err := exec.CommandContext(ctx, name, args...).Start(); err != nil {
		return fmt.Errorf("open %q with %s: %w", path, name, err)
	}
	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
