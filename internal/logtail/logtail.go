package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Options filter what Read returns.
type Options struct {
	// Lines caps the result to the last N kept lines; zero or less keeps all.
	Lines int
	// MinLevel drops slog records below this level. Lines without a
	// level= attribute (continuations, foreign output) are always kept.
	MinLevel slog.Level
}

// Read returns the tail of the log file at path. A missing file yields no
// lines and no error.
func Read(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := Tail(file, opts)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// Tail scans r once and keeps the last opts.Lines lines that pass the level
// filter, in their original order.
func Tail(r io.Reader, opts Options) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	keep := func(line string) bool {
		level, ok := LevelOf(line)
		return !ok || level >= opts.MinLevel
	}

	if opts.Lines <= 0 {
		var all []string
		for scanner.Scan() {
			if line := scanner.Text(); keep(line) {
				all = append(all, line)
			}
		}
		return all, scanner.Err()
	}

	max := opts.Lines
	ring := make([]string, max)
	count, idx := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if !keep(line) {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % max
		if count < max {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == max {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%max]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// LevelOf extracts the level= attribute written by slog's text handler.
func LevelOf(line string) (slog.Level, bool) {
	value, ok := levelToken(line)
	if !ok {
		return 0, false
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, false
	}
	return level, true
}

func levelToken(line string) (string, bool) {
	const key = "level="
	start := strings.Index(line, key)
	if start < 0 || (start > 0 && line[start-1] != ' ') {
		return "", false
	}
	rest := line[start+len(key):]
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		rest = rest[:end]
	}
	return rest, rest != ""
}

var levelStyles = map[slog.Level]lipgloss.Style{
	slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
	slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
	slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
}

// Highlight colours the level token of a slog text line. Lines without a
// recognised level are returned unchanged; on a terminal without colour
// support lipgloss renders the token as-is.
func Highlight(line string) string {
	token, ok := levelToken(line)
	if !ok {
		return line
	}
	level, ok := LevelOf(line)
	if !ok {
		return line
	}
	style, ok := levelStyles[level]
	if !ok {
		return line
	}
	return strings.Replace(line, "level="+token, "level="+style.Render(token), 1)
}
