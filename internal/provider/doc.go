// Package provider implements the responder side of the GNOME Shell search
// provider protocol, independent of any transport.
//
// A Session owns one cache of candidate items and answers the five protocol
// operations against it:
//
//   - Search refreshes the cache from the session's ItemsSource and returns
//     ranked result IDs.
//   - Subsearch narrows a previous result list against the cached items
//     without touching the source.
//   - ResultMetas returns display metadata for specific result IDs.
//   - Activate opens one result in the underlying application.
//   - Launch opens the application without an argument.
//
// The shell dispatches these calls independently and possibly concurrently,
// so the cache is guarded by a mutex: readers always observe either the old
// or the new result set, never a partial replacement.
//
// Concurrent Search calls are serialized by generation: every Search bumps a
// request counter before it fetches, and applies its fetch result only if no
// newer Search has been requested in the meantime. A slow stale fetch can
// therefore never clobber the result of a faster, newer one, regardless of
// completion order.
//
// Failures stay local to the operation that hit them. A failed fetch leaves
// the previous cache authoritative, a failed launch is logged in full and
// surfaced with a generic message, and no error ever poisons other in-flight
// calls.
package provider
