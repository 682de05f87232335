// Package logtail reads the end of platter's log file.
//
// Tail makes one pass over the input and keeps the last N matching lines in a
// ring buffer, so memory stays O(N) however large the file grows. An optional
// minimum level drops slog text-handler records below it; lines that carry no
// level= attribute are kept so panics and continuation lines stay visible.
//
//	lines, err := logtail.Read(cfg.Log.File, logtail.Options{Lines: 100, MinLevel: slog.LevelWarn})
//
// Read treats a missing file as empty. Highlight colours the level token for
// terminal output.
package logtail
