package launch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrEntryNotFound means no desktop entry exists for a desktop ID in any XDG
// application directory.
var ErrEntryNotFound = errors.New("desktop entry not found")

// Entry is the subset of a desktop entry this service needs.
type Entry struct {
	// ID is the desktop file name, e.g. "jetbrains-idea.desktop".
	ID string

	// Name is the application's display name.
	Name string

	// Icon is the icon name reported in result metadata.
	Icon string

	// Exec is the raw Exec line, with field codes still in place.
	Exec string
}

// FindEntry locates and parses the desktop entry for desktopID, searching
// the applications/ subdirectory of $XDG_DATA_HOME and every $XDG_DATA_DIRS
// entry in precedence order.
func FindEntry(desktopID string) (*Entry, error) {
	for _, dir := range dataDirs() {
		path := filepath.Join(dir, "applications", desktopID)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return parseEntry(desktopID, path)
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, desktopID)
}

func parseEntry(desktopID, path string) (*Entry, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	section := file.Section("Desktop Entry")
	entry := &Entry{
		ID:   desktopID,
		Name: section.Key("Name").String(),
		Icon: section.Key("Icon").String(),
		Exec: section.Key("Exec").String(),
	}
	if entry.Exec == "" {
		return nil, fmt.Errorf("desktop entry %s has no Exec line", path)
	}
	return entry, nil
}

// dataDirs returns the XDG data directories in precedence order.
func dataDirs() []string {
	var dirs []string

	home := os.Getenv("XDG_DATA_HOME")
	if home == "" {
		if userHome, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(userHome, ".local", "share")
		}
	}
	if home != "" {
		dirs = append(dirs, home)
	}

	system := os.Getenv("XDG_DATA_DIRS")
	if system == "" {
		system = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(system, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
