package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mvarner/jetsearch/internal/matching"
)

// Item is the contract a searchable item must satisfy: it can be scored
// against query terms and exposes the display fields the shell needs.
type Item interface {
	matching.Scorable

	// DisplayName returns the human readable name shown in the result list.
	DisplayName() string

	// Locator returns the URI or path that identifies the item. It doubles
	// as the result description and as the argument for activation.
	Locator() string
}

// ItemsSource supplies the current candidate collection on demand. Fetch may
// block on I/O and may fail; the error should carry a displayable cause.
type ItemsSource[T any] interface {
	Fetch(ctx context.Context) (*ResultSet[T], error)
}

// LaunchClient performs the activation side effect for an application.
type LaunchClient interface {
	// OpenURI opens locator in the application identified by appID.
	OpenURI(ctx context.Context, appID, locator string) error

	// Open launches the application without an argument.
	Open(ctx context.Context, appID string) error
}

// ResultMeta is the display metadata for one result ID.
type ResultMeta struct {
	ID          string
	Name        string
	Icon        string
	Description string
}

// Session implements the search provider protocol for one application. It
// caches the item collection fetched by the most recent Search and serves
// Subsearch, ResultMetas and Activate from that cache.
type Session[T Item] struct {
	appID    string
	icon     string
	source   ItemsSource[T]
	launcher LaunchClient
	logger   *slog.Logger

	mu        sync.Mutex
	items     *ResultSet[T]
	requested uint64 // generation of the most recently started Search
	applied   uint64 // generation of the currently installed result set
}

// NewSession creates a session for the application identified by appID. The
// icon is reported unchanged in every result's metadata; source and launcher
// supply the candidate items and the activation side effect. A nil logger
// falls back to slog.Default().
func NewSession[T Item](appID, icon string, source ItemsSource[T], launcher LaunchClient, logger *slog.Logger) (*Session[T], error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if launcher == nil {
		return nil, ErrLauncherRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session[T]{
		appID:    appID,
		icon:     icon,
		source:   source,
		launcher: launcher,
		logger:   logger,
	}, nil
}

// AppID returns the desktop ID of the application this session serves.
func (s *Session[T]) AppID() string { return s.appID }

// Search starts a new search: it fetches the current item collection from
// the source, installs it as the session's cache and returns the ranked IDs
// of all items matching terms.
//
// If the fetch fails the cache is left untouched and the call fails with
// ErrSourceUnavailable. If a newer Search was requested while this fetch was
// in flight, the stale result is discarded: the ranking is computed against
// the newer installed set if one has landed, or against this call's own
// fetch result otherwise.
func (s *Session[T]) Search(ctx context.Context, terms []string) ([]string, error) {
	s.mu.Lock()
	s.requested++
	gen := s.requested
	s.mu.Unlock()

	s.logger.Debug("starting search", "app", s.appID, "terms", terms, "generation", gen)

	set, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("failed to fetch recent items", "app", s.appID, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case gen == s.requested:
		s.items = set
		s.applied = gen
	case s.applied > gen:
		// A newer search already finished; rank against its result.
		s.logger.Debug("search superseded, ranking against newer set",
			"app", s.appID, "generation", gen, "applied", s.applied)
		set = s.items
	default:
		// Superseded, but the newer fetch is still in flight. Rank our own
		// result without installing it.
		s.logger.Debug("search superseded, discarding fetch",
			"app", s.appID, "generation", gen, "requested", s.requested)
	}

	ids := rank(set, terms)
	s.logger.Debug("search finished", "app", s.appID, "results", len(ids))
	return ids, nil
}

// Subsearch refines a previous result list against the current cache. IDs no
// longer present in the cache are dropped silently; the remaining candidates
// are re-ranked against terms. Subsearch never consults the items source.
func (s *Session[T]) Subsearch(previous, terms []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := make([]matching.Candidate[T], 0, len(previous))
	for _, id := range previous {
		if item, ok := s.items.Get(id); ok {
			candidates = append(candidates, matching.Candidate[T]{ID: id, Item: item})
		}
	}

	ids := matching.Rank(candidates, terms)
	s.logger.Debug("subsearch finished", "app", s.appID,
		"previous", len(previous), "results", len(ids))
	return ids
}

// ResultMetas returns display metadata for ids, in input order. IDs not in
// the current cache are omitted, so the output may be shorter than the input.
func (s *Session[T]) ResultMetas(ids []string) []ResultMeta {
	s.mu.Lock()
	defer s.mu.Unlock()

	metas := make([]ResultMeta, 0, len(ids))
	for _, id := range ids {
		item, ok := s.items.Get(id)
		if !ok {
			s.logger.Debug("no metadata for unknown result", "app", s.appID, "id", id)
			continue
		}
		metas = append(metas, ResultMeta{
			ID:          id,
			Name:        item.DisplayName(),
			Icon:        s.icon,
			Description: item.Locator(),
		})
	}
	return metas
}

// Activate opens the result identified by id in the application. The terms
// and timestamp arguments are part of the protocol but take no part in the
// lookup. An id missing from the cache fails with ErrResultNotFound without
// invoking the launcher.
func (s *Session[T]) Activate(ctx context.Context, id string, terms []string, timestamp uint32) error {
	s.mu.Lock()
	item, ok := s.items.Get(id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrResultNotFound, id)
	}

	locator := item.Locator()
	s.logger.Info("activating result", "app", s.appID, "id", id, "locator", locator)

	if err := s.launcher.OpenURI(ctx, s.appID, locator); err != nil {
		s.logger.Error("failed to open result", "app", s.appID,
			"id", id, "locator", locator, "err", err)
		return fmt.Errorf("%w: could not open %s", ErrLaunchFailed, s.appID)
	}
	return nil
}

// Launch opens the application without an argument. Terms and timestamp are
// accepted for protocol compatibility and ignored.
func (s *Session[T]) Launch(ctx context.Context, terms []string, timestamp uint32) error {
	s.logger.Info("launching app", "app", s.appID)

	if err := s.launcher.Open(ctx, s.appID); err != nil {
		s.logger.Error("failed to launch app", "app", s.appID, "err", err)
		return fmt.Errorf("%w: could not launch %s", ErrLaunchFailed, s.appID)
	}
	return nil
}

// rank flattens a result set into ranked candidate IDs.
func rank[T Item](set *ResultSet[T], terms []string) []string {
	candidates := make([]matching.Candidate[T], 0, set.Len())
	set.Each(func(id string, item T) {
		candidates = append(candidates, matching.Candidate[T]{ID: id, Item: item})
	})
	return matching.Rank(candidates, terms)
}
