// Package state owns the catalog fetch lifecycle and the filter query.
//
// # Overview
//
// Store is the single source of truth the UI renders from. It holds the item
// list, the loading flag, the user-facing error and the query string, and it
// derives the filtered view on demand. The UI never mutates state directly;
// it calls Fetch (or Refresh) and SetQuery and reads Snapshot.
//
//	Fetch / Refresh:               UI tick:
//	┌──────────────────┐          ┌──────────────────┐
//	│ begin()  Loading │          │                  │
//	│ FetchCatalog()   │          │ store.Snapshot() │
//	│ settle() atomic  │─────────→│ snap.Filtered()  │
//	└──────────────────┘  (mutex) │ render           │
//	                              └──────────────────┘
//
// # Fetch Lifecycle
//
// Every attempt runs in two locked steps around the network call:
//
//	begin:  Loading = true, Error = nil
//	settle: success → Items replaced, Error and LastError cleared
//	        failure → Items kept, LastError set,
//	                  Error set only if no items are held
//	        always  → Loading = false
//
// settle applies all fields under one lock, so a reader never sees Loading
// cleared with half-applied results. A panicking fetcher is recovered and
// recorded as a failure so Loading cannot stick.
//
// New starts exactly one fetch automatically; Ready is closed when it
// settles. Later fetches are manual refreshes; nothing retries on its own.
//
// # Error Suppression
//
// A failed refresh against a populated list keeps the stale items and leaves
// Error nil, so Snapshot.ShowError is false and the list stays on screen.
// The failure is still available in LastError and ConsecutiveFailures for a
// status line hint.
//
// # Overlapping Fetches
//
// Fetches are not cancelled or de-duplicated. By default the last attempt to
// settle wins, whatever order they were started in. WithDiscardStale tags
// each attempt with a generation number and ignores results from attempts
// that have been superseded, so the newest request wins instead.
//
// # Filtering
//
// Filtered is recomputed on every call from Items and Query via
// catalog.Filter. SetQuery only swaps the string.
//
// # Concurrency Model
//
// Store uses a sync.RWMutex. Snapshot and Filtered take the read lock and
// copy; the network call runs with no lock held, so reads stay responsive
// while a fetch is in flight.
package state
