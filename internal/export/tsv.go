package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/derdiedas/internal/extract"
)

// TSV renders entries as header-less tab-separated text, one row per
// entry, the same four fields as the CSV export. There is no quoting;
// tabs and newlines inside a field would break the row structure, so
// they are flattened to spaces.
func TSV(entries []extract.Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		fields := record(e)
		for i, f := range fields {
			fields[i] = flatten(f)
		}
		sb.WriteString(strings.Join(fields, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteTSV writes the tab-separated form to w
func WriteTSV(w io.Writer, entries []extract.Entry) error {
	if _, err := io.WriteString(w, TSV(entries)); err != nil {
		return fmt.Errorf("failed to write TSV: %w", err)
	}
	return nil
}

// GenerateTSVFile writes the tab-separated form to the given path
func GenerateTSVFile(path string, entries []extract.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create TSV file: %w", err)
	}
	defer file.Close()

	return WriteTSV(file, entries)
}

func flatten(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}
