package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/derdiedas/internal/extract"
)

// Headers are the CSV column names, in order. The ExampleSentence
// column is part of the import contract but always left empty.
var Headers = []string{"English", "GermanNoun", "Article", "ExampleSentence"}

// record renders one entry as a CSV/TSV row
func record(e extract.Entry) []string {
	return []string{e.English, e.Noun, e.Article, ""}
}

// WriteCSV writes entries as CSV with a header row
func WriteCSV(w io.Writer, entries []extract.Entry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, e := range entries {
		if err := writer.Write(record(e)); err != nil {
			return fmt.Errorf("failed to write entry '%s': %w", e.Display(), err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// GenerateCSVFile writes entries as CSV to the given path
func GenerateCSVFile(path string, entries []extract.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	return WriteCSV(file, entries)
}
