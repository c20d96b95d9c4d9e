// Package keywords maps validated exposure requests onto the instrument
// keyword assignments an external sequencer would apply: the octagon mirror
// position, neutral-density wheel positions, exposure time, and the
// comma-joined detector trigger and shutter lists.
//
// The package only describes keyword writes; it never talks to a keyword
// service. [Translate] covers a single request and [BuildProgram] renders the
// full ordered program for a set of requests, including calibration lamp
// power steps and the warm-up wait.
package keywords
