package projects

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/mvarner/jetsearch/internal/provider"
)

// nameReaders bounds the concurrent .idea/.name reads during a fetch.
const nameReaders = 8

// Source loads the recent projects of one product on demand. It implements
// provider.ItemsSource and re-reads the recent projects file on every fetch,
// so newly opened projects show up without restarting the daemon.
type Source struct {
	appID      string
	config     ConfigLocation
	configHome string
	home       string
	logger     *slog.Logger
}

// NewSource creates a source for the product identified by appID with the
// given configuration location.
func NewSource(appID string, config ConfigLocation, logger *slog.Logger) (*Source, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locating config home: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}
	return newSourceAt(appID, config, configHome, home, logger), nil
}

// newSourceAt is NewSource with explicit directories, for tests.
func newSourceAt(appID string, config ConfigLocation, configHome, home string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		appID:      appID,
		config:     config,
		configHome: configHome,
		home:       home,
		logger:     logger,
	}
}

// Fetch reads the current recent project list. A product without a recent
// projects file yields an empty set, not an error; a file that exists but
// cannot be read or parsed fails the fetch.
func (s *Source) Fetch(ctx context.Context) (*provider.ResultSet[Project], error) {
	set := provider.NewResultSet[Project]()

	file, ok := s.config.RecentProjectsFile(s.configHome)
	if !ok {
		s.logger.Debug("no recent projects file", "app", s.appID)
		return set, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	paths, err := readRecentProjects(f, s.home)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	// Resolve display names concurrently; each one may touch the filesystem.
	names := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(nameReaders)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				// Project directory is gone; leave the name empty so the
				// entry is dropped below.
				return nil
			}
			names[i] = projectName(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, path := range paths {
		if names[i] == "" {
			continue
		}
		id := fmt.Sprintf("jetbrains-recent-project-%s-%s", s.appID, path)
		set.Insert(id, Project{Name: names[i], Path: path})
	}

	s.logger.Debug("fetched recent projects", "app", s.appID, "count", set.Len())
	return set, nil
}
