// Package confedit edits line-oriented configuration files made of bare
// tokens and key=value pairs, one entry per line. All functions are
// stateless and operate directly on the file at the given path; callers
// are responsible for serializing concurrent writers.
package confedit

import (
	"fmt"
	"os"
	"strings"
)

// validateKey rejects keys that cannot form a well-defined line.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key must not be empty")
	}
	if strings.ContainsAny(key, "=\n") {
		return fmt.Errorf("key %q must not contain '=' or a newline", key)
	}
	return nil
}

// lineHasKey reports whether a line carries the key, either as a bare
// token or as the left-hand side of a key=value pair. Matching is
// anchored to the key boundary, so "BLOCKING" never matches a
// "BLOCKING_MODE=..." line.
func lineHasKey(line, key string) bool {
	return line == key || strings.HasPrefix(line, key+"=")
}

// ensureExists creates an empty file at path when none is present.
func ensureExists(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f.Close()
}

// readLines returns the file content split into lines, without the
// trailing newline artifact.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// writeLines writes lines back, one per line with a trailing newline.
func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// SetValue upserts a key=value line in the file at path, creating the
// file first if it does not exist. Every line carrying the key is
// collapsed into a single key=value line at the position of the first
// occurrence; if the key is absent the line is appended. After a
// successful call the file contains exactly one line for the key.
func SetValue(path, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ensureExists(path); err != nil {
		return err
	}

	lines, err := readLines(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := make([]string, 0, len(lines)+1)
	replaced := false
	for _, line := range lines {
		if lineHasKey(line, key) {
			if !replaced {
				out = append(out, key+"="+value)
				replaced = true
			}
			continue
		}
		out = append(out, line)
	}
	if !replaced {
		out = append(out, key+"="+value)
	}

	if err := writeLines(path, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// AddKey appends the key as a bare line to the file at path, creating
// the file first if it does not exist. Idempotent: when any line already
// carries the key (bare or with a value) the file is left untouched, so
// repeated calls never duplicate the key and never reformat an existing
// entry.
func AddKey(path, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ensureExists(path); err != nil {
		return err
	}

	lines, err := readLines(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, line := range lines {
		if lineHasKey(line, key) {
			return nil
		}
	}

	if err := writeLines(path, append(lines, key)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// RemoveKey deletes every line carrying the key from the file at path.
// A missing file or an absent key is a no-op, not an error.
func RemoveKey(path, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	lines, err := readLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := make([]string, 0, len(lines))
	removed := false
	for _, line := range lines {
		if lineHasKey(line, key) {
			removed = true
			continue
		}
		out = append(out, line)
	}
	if !removed {
		return nil
	}

	if err := writeLines(path, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
