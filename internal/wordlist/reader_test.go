package wordlist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := writeTempList(t, `# seed translations
Hund = dog
katze = cat

straße = street
malformed line
= orphan
Baum =
`)

	entries, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	want := []Entry{
		{Noun: "hund", English: "dog"},
		{Noun: "katze", English: "cat"},
		{Noun: "straße", English: "street"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("ReadFile = %v, want %v", entries, want)
	}
}

func TestReadFile_Empty(t *testing.T) {
	path := writeTempList(t, "\n\n# only comments\n")

	entries, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile("/nonexistent/words.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}
