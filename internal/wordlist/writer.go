// Package wordlist writes generated username lists to their destination.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Write writes one username per line to w.
func Write(w io.Writer, usernames []string) error {
	bw := bufio.NewWriter(w)
	for _, username := range usernames {
		if _, err := fmt.Fprintln(bw, username); err != nil {
			return fmt.Errorf("failed to write username: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// WriteFile writes the wordlist to path, creating parent directories as
// needed. The file is truncated if it already exists.
func WriteFile(path string, usernames []string, logger *slog.Logger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Write(f, usernames); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Debug("wordlist written", "path", path, "count", len(usernames))
	return nil
}
