package projects

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// recentEntriesPath selects the project path entries of a recent projects
// file. The structure is stable since IDEA 2020.3; older layouts are not
// supported by current product versions.
const recentEntriesPath = "//component[@name='RecentProjectsManager']/option[@name='additionalInfo']/map/entry"

// readRecentProjects extracts the project paths from a recentProjects.xml
// document. The IDE writes paths with the user's home directory replaced by
// the $USER_HOME$ macro; home is substituted back in.
func readRecentProjects(r io.Reader, home string) ([]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing recent projects: %w", err)
	}

	var paths []string
	for _, entry := range doc.FindElements(recentEntriesPath) {
		key := entry.SelectAttrValue("key", "")
		if key == "" {
			continue
		}
		paths = append(paths, strings.ReplaceAll(key, "$USER_HOME$", home))
	}
	return paths, nil
}

// projectName determines the display name of the project at path. IDEs store
// a custom name in .idea/.name; without one the directory's base name is the
// project name.
func projectName(path string) string {
	name, err := os.ReadFile(filepath.Join(path, ".idea", ".name"))
	if err == nil {
		if trimmed := strings.TrimSpace(string(name)); trimmed != "" {
			return trimmed
		}
	}
	return filepath.Base(path)
}
