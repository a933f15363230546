// Package dbusx exposes search sessions on the D-Bus session bus.
//
// Each session is exported as an org.gnome.Shell.SearchProvider2 object; the
// shell discovers the objects through the provider files shipped in
// providers/ and calls the five interface methods directly. godbus serves
// every incoming call on its own goroutine, so the sessions behind the
// adapters must be safe for concurrent use.
//
// The service claims one well-known bus name for all exported providers and
// refuses to start if another instance already owns it.
package dbusx
