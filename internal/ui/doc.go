// Package ui renders the catalog as a Bubble Tea terminal interface.
//
// The model never mutates catalog state itself. It reads state.Snapshot
// values on a tick (and immediately after its own actions) and drives the
// store through two calls: Refresh for the r key and SetQuery for every edit
// of the search input.
//
// # Layout
//
//	platter  ● OK  Recipes: 3/24  12:04:10 (now)     header
//	/shri                                             search bar
//	› Shrimp Curry                               1    list, error view,
//	  Garlic Shrimp                              7    loading view or
//	  Shrimp Chow Fun                           12    empty state
//	/:Filter by name  r:Refresh  ...  T:Nightfox      command bar
//
// The body shows exactly one of four states, in this order of precedence:
// the error view when Snapshot.ShowError, "Loading..." before the first
// successful fetch, an empty-state message when nothing matches, and
// otherwise the filtered list with a cursor. A refresh that fails while
// items are held keeps the list and only adds a warning to the header.
//
// # Key Bindings
//
//   - /: focus the search input (every keystroke filters)
//   - enter: leave the input and keep the filter
//   - esc: leave the input and clear the filter
//   - r: refresh from the endpoint
//   - j/k, g/G, ctrl+d/ctrl+u: move the cursor
//   - T: cycle theme (saved to prefs)
//   - ?: help
//   - q or ctrl+c: quit
package ui
