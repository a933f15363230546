package launch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvarner/jetsearch/internal/provider"
)

// TestExpandExec tests Exec line tokenization and field code expansion
func TestExpandExec(t *testing.T) {
	tests := []struct {
		name    string
		exec    string
		locator string
		want    []string
		wantErr bool
	}{
		{
			name:    "FileCode",
			exec:    "/opt/idea/bin/idea.sh %f",
			locator: "/home/user/code/alpha",
			want:    []string{"/opt/idea/bin/idea.sh", "/home/user/code/alpha"},
		},
		{
			name:    "URICode",
			exec:    "goland %u",
			locator: "/home/user/code/alpha",
			want:    []string{"goland", "file:///home/user/code/alpha"},
		},
		{
			name:    "URICodeKeepsScheme",
			exec:    "goland %u",
			locator: "file:///home/user/code/alpha",
			want:    []string{"goland", "file:///home/user/code/alpha"},
		},
		{
			name:    "EmptyLocatorDropsCode",
			exec:    "goland %U",
			locator: "",
			want:    []string{"goland"},
		},
		{
			name:    "IconAndCaptionCodesDropped",
			exec:    "app %i %c %k %f",
			locator: "/p",
			want:    []string{"app", "/p"},
		},
		{
			name:    "QuotedArgument",
			exec:    `"/opt/My IDE/bin/ide" %f`,
			locator: "/p",
			want:    []string{"/opt/My IDE/bin/ide", "/p"},
		},
		{
			name:    "EscapedPercent",
			exec:    "app --progress=50%% %f",
			locator: "/p",
			want:    []string{"app", "--progress=50%", "/p"},
		},
		{
			name:    "UnterminatedQuote",
			exec:    `app "broken`,
			wantErr: true,
		},
		{
			name:    "OnlyCodesAndEmptyLocator",
			exec:    "%f",
			locator: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			argv, err := expandExec(tt.exec, tt.locator)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, argv)
		})
	}
}

// TestFindEntry resolves a desktop entry from a fake XDG data dir
func TestFindEntry(t *testing.T) {
	dataHome := t.TempDir()
	apps := filepath.Join(dataHome, "applications")
	require.NoError(t, os.MkdirAll(apps, 0o755))

	desktopFile := `[Desktop Entry]
Type=Application
Name=GoLand
Icon=goland
Exec=/opt/goland/bin/goland.sh %f
`
	require.NoError(t, os.WriteFile(filepath.Join(apps, "jetbrains-goland.desktop"), []byte(desktopFile), 0o644))

	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_DATA_DIRS", "/nonexistent")

	entry, err := FindEntry("jetbrains-goland.desktop")
	require.NoError(t, err)
	assert.Equal(t, "GoLand", entry.Name)
	assert.Equal(t, "goland", entry.Icon)
	assert.Equal(t, "/opt/goland/bin/goland.sh %f", entry.Exec)
}

// TestFindEntryMissing verifies the not-found sentinel
func TestFindEntryMissing(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_DATA_DIRS", "/nonexistent")

	_, err := FindEntry("no-such-app.desktop")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// TestLauncherOpenURI runs the launcher against a fake spawn function
func TestLauncherOpenURI(t *testing.T) {
	dataHome := t.TempDir()
	apps := filepath.Join(dataHome, "applications")
	require.NoError(t, os.MkdirAll(apps, 0o755))
	desktopFile := `[Desktop Entry]
Name=IDEA
Icon=idea
Exec=idea %u
`
	require.NoError(t, os.WriteFile(filepath.Join(apps, "jetbrains-idea.desktop"), []byte(desktopFile), 0o644))
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_DATA_DIRS", "/nonexistent")

	var spawned [][]string
	l := NewLauncher(nil)
	l.start = func(argv []string) error {
		spawned = append(spawned, argv)
		return nil
	}

	ctx := context.Background()
	require.NoError(t, l.OpenURI(ctx, "jetbrains-idea.desktop", "/home/user/code/alpha"))
	require.NoError(t, l.Open(ctx, "jetbrains-idea.desktop"))

	require.Len(t, spawned, 2)
	assert.Equal(t, []string{"idea", "file:///home/user/code/alpha"}, spawned[0])
	assert.Equal(t, []string{"idea"}, spawned[1])
}

// TestLauncherMissingApp verifies launching an unknown app fails cleanly
func TestLauncherMissingApp(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_DATA_DIRS", "/nonexistent")

	l := NewLauncher(nil)
	err := l.Open(context.Background(), "no-such-app.desktop")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// TestLauncherImplementsLaunchClient pins the provider contract
func TestLauncherImplementsLaunchClient(t *testing.T) {
	var _ provider.LaunchClient = (*Launcher)(nil)
}
