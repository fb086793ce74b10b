// Package browser hands article links (sources, images) to the desktop's
// URL opener.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Command validates rawURL and builds the opener command for goos without
// starting it. Only absolute http and https URLs are accepted.
func Command(goos, rawURL string) (*exec.Cmd, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("refusing to open %q (only http/https links can be opened)", rawURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("refusing to open %q: missing host", rawURL)
	}

	switch goos {
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "windows":
		// rundll32 avoids cmd's shell parsing of the URL
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL), nil
	default:
		return exec.Command("xdg-open", rawURL), nil
	}
}

func Open(rawURL string) error {
	cmd, err := Command(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Openable reports whether Open would accept rawURL.
func Openable(rawURL string) bool {
	_, err := Command(runtime.GOOS, rawURL)
	return err == nil
}
