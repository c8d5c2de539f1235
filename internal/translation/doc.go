// Package translation provides German to English translation of
// extracted nouns using remote chat-completion services. Requests are
// serialized and rate limited, retried with linear backoff behind a
// circuit breaker, and cached per noun both in memory and optionally in
// a SQLite store. Translation failures are non-fatal.
package translation
