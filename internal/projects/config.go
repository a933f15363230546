package projects

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// ConfigLocation describes where a product keeps its configuration.
type ConfigLocation struct {
	// VendorDir is the vendor directory below the XDG config home,
	// e.g. "JetBrains" or "Google".
	VendorDir string

	// ConfigGlob matches the per-version configuration directories inside
	// the vendor directory, e.g. "IntelliJIdea*".
	ConfigGlob string

	// ProjectsFilename is the recent projects file below the version
	// directory's options/ subdirectory.
	ProjectsFilename string
}

// Version directory names embed "<epoch>.<major>", e.g. IntelliJIdea2024.1.
var versionPattern = regexp.MustCompile(`(\d{1,4})\.(\d{1,2})`)

// configVersion extracts the (epoch, major) version from a directory name.
func configVersion(name string) (epoch, major int, ok bool) {
	m := versionPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	epoch, _ = strconv.Atoi(m[1])
	major, _ = strconv.Atoi(m[2])
	return epoch, major, true
}

// latestConfigDir returns the configuration directory of the newest
// installed product version below configHome, or false if none exists.
func (c ConfigLocation) latestConfigDir(configHome string) (string, bool) {
	candidates, err := filepath.Glob(filepath.Join(configHome, c.VendorDir, c.ConfigGlob))
	if err != nil {
		// Only a malformed pattern reaches here; treat it as not installed.
		return "", false
	}

	best := ""
	bestEpoch, bestMajor := -1, -1
	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		epoch, major, ok := configVersion(filepath.Base(dir))
		if !ok {
			continue
		}
		if epoch > bestEpoch || (epoch == bestEpoch && major > bestMajor) {
			best, bestEpoch, bestMajor = dir, epoch, major
		}
	}
	return best, best != ""
}

// RecentProjectsFile returns the recent projects file of the newest installed
// version, or false if the product is not installed or has no such file.
func (c ConfigLocation) RecentProjectsFile(configHome string) (string, bool) {
	dir, ok := c.latestConfigDir(configHome)
	if !ok {
		return "", false
	}
	file := filepath.Join(dir, "options", c.ProjectsFilename)
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return "", false
	}
	return file, true
}
