// Package app is platter's composition root.
//
// # Run
//
//	config.Load()        read ~/.config/platter/config.toml
//	OpenLogger()         slog text handler on the log file
//	prefs.Load()         theme
//	mealdb.NewClient()   HTTP client for the endpoint
//	state.New()          store; starts the initial fetch
//	ui.NewProgram()      Bubble Tea program
//
// Run then waits on an errgroup of two goroutines: the program itself and a
// watcher that nudges the UI as soon as the initial fetch settles. Quitting
// the UI cancels the watcher; cancelling the parent context (SIGINT) kills
// the program.
//
// Nothing polls the endpoint. After the initial fetch, data only changes when
// the user refreshes.
//
// # Headless commands
//
// List runs the same client and store without the UI: it waits for the
// initial fetch, applies a query and prints a table or JSON. Logs prints the
// tail of the log file.
//
// # Errors
//
// Config, logger and client construction failures are returned from Run.
// Fetch failures never are; they live in the store snapshot. List is the
// exception: a headless fetch that fails returns the underlying cause so
// the command exits non-zero.
package app
