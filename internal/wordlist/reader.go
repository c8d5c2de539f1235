// Package wordlist reads user-supplied translation seed files so known
// translations never hit the remote service.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one seeded translation
type Entry struct {
	Noun    string
	English string
}

// ReadFile reads a seed file of "noun = english" lines. Blank lines and
// lines starting with '#' are skipped; lines without '=' or with an
// empty side are ignored. Nouns are lowercased to match extraction.
func ReadFile(filename string) ([]Entry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		noun := strings.ToLower(strings.TrimSpace(parts[0]))
		english := strings.TrimSpace(parts[1])
		if noun == "" || english == "" {
			continue
		}

		entries = append(entries, Entry{Noun: noun, English: english})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return entries, nil
}
