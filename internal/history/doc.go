// Package history persists validated exposure requests in a local SQLite
// archive so operators can audit what was requested of the instrument.
//
// The store is append-only from the tool's point of view: each validated
// request is saved once under its generated ID together with the raw file
// text and the derived keyword list values.
package history
