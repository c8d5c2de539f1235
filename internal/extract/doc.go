// Package extract implements the noun harvesting core: it tokenizes
// free-form German text into words, pairs articles with the noun that
// follows them, and deduplicates the result while preserving first-seen
// order. The extractor is pure and performs no I/O; translation and
// export are layered on top by other packages.
package extract
