package dbusx

import (
	"context"
	"log/slog"

	"github.com/godbus/dbus/v5"

	"github.com/mvarner/jetsearch/internal/provider"
)

// searchProviderInterface is the GNOME Shell search provider interface name.
const searchProviderInterface = "org.gnome.Shell.SearchProvider2"

// introspectXML describes the exported interface, for
// org.freedesktop.DBus.Introspectable.
const introspectXML = `<node>
  <interface name="org.gnome.Shell.SearchProvider2">
    <method name="GetInitialResultSet">
      <arg type="as" name="terms" direction="in" />
      <arg type="as" name="results" direction="out" />
    </method>
    <method name="GetSubsearchResultSet">
      <arg type="as" name="previous_results" direction="in" />
      <arg type="as" name="terms" direction="in" />
      <arg type="as" name="results" direction="out" />
    </method>
    <method name="GetResultMetas">
      <arg type="as" name="identifiers" direction="in" />
      <arg type="aa{sv}" name="metas" direction="out" />
    </method>
    <method name="ActivateResult">
      <arg type="s" name="identifier" direction="in" />
      <arg type="as" name="terms" direction="in" />
      <arg type="u" name="timestamp" direction="in" />
    </method>
    <method name="LaunchSearch">
      <arg type="as" name="terms" direction="in" />
      <arg type="u" name="timestamp" direction="in" />
    </method>
  </interface>
</node>`

// Session is the protocol surface the transport adapts. provider.Session
// instantiations satisfy it for any item type.
type Session interface {
	AppID() string
	Search(ctx context.Context, terms []string) ([]string, error)
	Subsearch(previous, terms []string) []string
	ResultMetas(ids []string) []provider.ResultMeta
	Activate(ctx context.Context, id string, terms []string, timestamp uint32) error
	Launch(ctx context.Context, terms []string, timestamp uint32) error
}

// searchProvider adapts one Session to the D-Bus method signatures. Only the
// five interface methods are exported, so godbus exposes nothing else.
type searchProvider struct {
	session Session
	logger  *slog.Logger
}

// GetInitialResultSet starts a new search and returns ranked result IDs.
func (p *searchProvider) GetInitialResultSet(terms []string) ([]string, *dbus.Error) {
	ids, err := p.session.Search(context.Background(), terms)
	if err != nil {
		return nil, dbus.MakeFailedError(err)
	}
	return ids, nil
}

// GetSubsearchResultSet refines a previous result list as the user types.
func (p *searchProvider) GetSubsearchResultSet(previous, terms []string) ([]string, *dbus.Error) {
	return p.session.Subsearch(previous, terms), nil
}

// GetResultMetas returns one a{sv} dictionary per known result ID.
func (p *searchProvider) GetResultMetas(ids []string) ([]map[string]dbus.Variant, *dbus.Error) {
	metas := p.session.ResultMetas(ids)
	out := make([]map[string]dbus.Variant, len(metas))
	for i, meta := range metas {
		out[i] = metaDict(meta)
	}
	return out, nil
}

// ActivateResult opens the selected result in the application.
func (p *searchProvider) ActivateResult(id string, terms []string, timestamp uint32) *dbus.Error {
	if err := p.session.Activate(context.Background(), id, terms, timestamp); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// LaunchSearch opens the application itself when the provider icon is
// clicked.
func (p *searchProvider) LaunchSearch(terms []string, timestamp uint32) *dbus.Error {
	if err := p.session.Launch(context.Background(), terms, timestamp); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// metaDict renders a result's metadata as the a{sv} dictionary the shell
// expects. The icon is passed as a "gicon" string, which the shell resolves
// through the icon theme.
func metaDict(meta provider.ResultMeta) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"id":          dbus.MakeVariant(meta.ID),
		"name":        dbus.MakeVariant(meta.Name),
		"gicon":       dbus.MakeVariant(meta.Icon),
		"description": dbus.MakeVariant(meta.Description),
	}
}
