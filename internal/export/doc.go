// Package export renders extracted entries for consumption elsewhere:
// a four-column CSV file (English, GermanNoun, Article, ExampleSentence),
// the same fields as header-less tab-separated text, and a clipboard
// copy of the tab-separated form for pasting into spreadsheets.
package export
