package projects

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadRecentProjects parses the standard recentProjects.xml layout
func TestReadRecentProjects(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "recentProjects.xml"))
	require.NoError(t, err)
	defer f.Close()

	paths, err := readRecentProjects(f, "/home/user")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/home/user/Code/gh/mdcat",
		"/home/user/Code/gh/jetsearch",
	}, paths)
}

// TestReadRecentProjectsMalformed verifies a broken document is an error
func TestReadRecentProjectsMalformed(t *testing.T) {
	_, err := readRecentProjects(strings.NewReader("<application><component"), "/home/user")
	assert.Error(t, err)
}

// TestReadRecentProjectsEmpty verifies an unrelated document yields no paths
func TestReadRecentProjectsEmpty(t *testing.T) {
	paths, err := readRecentProjects(strings.NewReader("<application></application>"), "/home/user")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

// TestProjectName tests the .idea/.name lookup and its fallback
func TestProjectName(t *testing.T) {
	dir := t.TempDir()

	named := filepath.Join(dir, "named-project")
	require.NoError(t, os.MkdirAll(filepath.Join(named, ".idea"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(named, ".idea", ".name"), []byte("Fancy Name\n"), 0o644))

	unnamed := filepath.Join(dir, "plain-project")
	require.NoError(t, os.MkdirAll(unnamed, 0o755))

	assert.Equal(t, "Fancy Name", projectName(named))
	assert.Equal(t, "plain-project", projectName(unnamed))
}
