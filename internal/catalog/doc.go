// Package catalog defines the recipe catalog domain: the item record, the
// case-insensitive name filter, and the error taxonomy shared by the HTTP
// boundary and the store.
//
// # Items
//
// An Item is one remote record with three opaque string fields. Items are
// values; nothing in the application mutates an Item after it has been
// decoded.
//
// # Filtering
//
// Filter returns the subsequence of items whose DisplayName contains the
// query, compared case-insensitively. It is a pure function of its inputs and
// allocates a fresh slice, so callers may hold on to the result while the
// store moves on.
//
//	visible := catalog.Filter(snapshot.Items, "shrimp")
//
// # Errors
//
// The fetch boundary reports one of three failure kinds:
//
//   - HTTPStatusError: the endpoint answered with a non-2xx status
//   - TransportError: the request could not be completed
//   - MalformedResponseError: the body was not the expected JSON shape
//
// KindOf classifies any error (including wrapped ones) and UserMessage turns
// it into the short text shown to the user. The original error stays
// reachable through errors.As for logging.
package catalog
