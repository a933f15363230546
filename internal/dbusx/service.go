package dbusx

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// ErrNameTaken means another process already owns the requested bus name,
// most likely a second daemon instance.
var ErrNameTaken = errors.New("bus name already taken")

// Service owns the session bus connection and the exported provider objects.
type Service struct {
	conn   *dbus.Conn
	logger *slog.Logger
}

// NewService connects to the session bus. A nil logger falls back to
// slog.Default().
func NewService(logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	return &Service{conn: conn, logger: logger}, nil
}

// RegisterProvider exports session as a SearchProvider2 object at path.
func (s *Service) RegisterProvider(path string, session Session) error {
	objPath := dbus.ObjectPath(path)
	if !objPath.IsValid() {
		return fmt.Errorf("invalid object path %q", path)
	}

	sp := &searchProvider{session: session, logger: s.logger}
	if err := s.conn.Export(sp, objPath, searchProviderInterface); err != nil {
		return fmt.Errorf("exporting provider at %s: %w", path, err)
	}
	if err := s.conn.Export(introspect.Introspectable(introspectXML), objPath,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("exporting introspection at %s: %w", path, err)
	}

	s.logger.Info("registered search provider", "app", session.AppID(), "path", path)
	return nil
}

// AcquireName claims the well-known bus name. The request does not queue: if
// the name is owned elsewhere the service fails instead of waiting to
// inherit it.
func (s *Service) AcquireName(name string) error {
	reply, err := s.conn.RequestName(name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("requesting name %s: %w", name, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("%w: %s", ErrNameTaken, name)
	}
	s.logger.Info("acquired bus name", "name", name)
	return nil
}

// Close releases the bus connection, dropping the name and all exported
// objects.
func (s *Service) Close() error {
	return s.conn.Close()
}
