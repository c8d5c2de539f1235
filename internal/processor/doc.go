// Package processor contains the main orchestration logic: it reads
// input text, runs the extraction core, optionally translates the
// result, and hands the entries to the selected exporter. This package
// serves as the coordinator between all other components.
package processor
