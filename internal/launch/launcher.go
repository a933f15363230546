package launch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"strings"
)

// Launcher starts desktop applications. It implements the launch client
// contract of the provider package.
type Launcher struct {
	logger *slog.Logger

	// start is swapped out in tests so no process is actually spawned.
	start func(argv []string) error
}

// NewLauncher creates a launcher. A nil logger falls back to slog.Default().
func NewLauncher(logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{logger: logger, start: startDetached}
}

// OpenURI launches the application identified by appID with locator as its
// argument.
func (l *Launcher) OpenURI(ctx context.Context, appID, locator string) error {
	return l.launch(ctx, appID, locator)
}

// Open launches the application identified by appID without an argument.
func (l *Launcher) Open(ctx context.Context, appID string) error {
	return l.launch(ctx, appID, "")
}

func (l *Launcher) launch(ctx context.Context, appID, locator string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := FindEntry(appID)
	if err != nil {
		return err
	}

	argv, err := expandExec(entry.Exec, locator)
	if err != nil {
		return fmt.Errorf("exec line of %s: %w", appID, err)
	}

	l.logger.Debug("spawning", "app", appID, "argv", argv)
	if err := l.start(argv); err != nil {
		return fmt.Errorf("starting %s: %w", appID, err)
	}
	return nil
}

// startDetached spawns argv as a detached process whose exit status is not
// collected.
func startDetached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// expandExec splits a desktop entry Exec line into an argv and expands its
// field codes. %f and %F take the locator as a path, %u and %U as a URI;
// the deprecated and display-related codes are dropped. An empty locator
// removes the file/URI codes entirely.
func expandExec(execLine, locator string) ([]string, error) {
	words, err := splitExec(execLine)
	if err != nil {
		return nil, err
	}

	var argv []string
	for _, word := range words {
		switch word {
		case "%f", "%F":
			if locator != "" {
				argv = append(argv, locator)
			}
		case "%u", "%U":
			if locator != "" {
				argv = append(argv, toURI(locator))
			}
		case "%i", "%c", "%k", "%d", "%D", "%n", "%N", "%v", "%m":
			// No icon, caption or deprecated expansion.
		default:
			argv = append(argv, strings.ReplaceAll(word, "%%", "%"))
		}
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("expands to an empty command")
	}
	return argv, nil
}

// splitExec tokenizes an Exec line, honoring double-quoted arguments and
// backslash escapes inside them.
func splitExec(execLine string) ([]string, error) {
	var words []string
	var current strings.Builder
	inWord := false
	quoted := false
	escaped := false

	for _, r := range execLine {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
			inWord = true
		case r == ' ' && !quoted:
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote")
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}

// toURI renders a locator as a URI, leaving values that already carry a
// scheme untouched.
func toURI(locator string) string {
	if strings.Contains(locator, "://") {
		return locator
	}
	u := url.URL{Scheme: "file", Path: locator}
	return u.String()
}
