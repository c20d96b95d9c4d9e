// Package sequence loads, validates, and encodes calibration exposure
// request files.
//
// A sequence file holds one `Key: Value` pair per line; `#` starts a trailing
// comment and keys may appear in any order. Parsing produces an immutable
// [models.ExposureRequest] that is handed off to the external exposure
// sequencer. Any malformed line, unknown key, missing required key, or
// out-of-domain value is reported as a *ParseError and aborts the load: a
// sequence file gates a physical instrument action and is never silently
// defaulted.
//
// The main entry points are [ParseFile] and [Parse] for loading, and
// [Encode] / [Format] for the canonical file form. Parsing the output of
// Format yields a record identical to the one encoded.
package sequence
