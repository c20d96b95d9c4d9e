package models

import "github.com/google/uuid"

// ExposureRequest describes a single calibration exposure request for the
// spectrograph: which octagon source feeds the calibration bench, which
// shutters are open, which detectors are triggered, and the exposure
// geometry (time and count).
//
// A request is constructed once by the sequence parser, validated, and then
// handed off to the external exposure sequencer. It has no mutation API and
// no lifecycle beyond construct → validate → hand-off.
type ExposureRequest struct {
	// ID is a generated identifier assigned when the request is parsed.
	// It is used for hand-off tracking and the request history store and
	// does not participate in the canonical file encoding.
	ID uuid.UUID

	// SourceFile is the path of the sequence file this request was loaded
	// from, or empty when parsed from an in-memory reader. Not part of the
	// canonical encoding.
	SourceFile string

	// OctagonSource selects which source the octagon mirror feeds into the
	// calibration bench (e.g. BrdbandFiber, Th_daily).
	OctagonSource OctagonSource

	// WarmUp is the wait, in seconds, to allow the selected lamp to warm up
	// if it was powered off. Zero means the source needs no warm-up.
	WarmUp int

	// TriggerRed selects the Red detector for triggering.
	TriggerRed bool

	// TriggerGreen selects the Green detector for triggering.
	TriggerGreen bool

	// TriggerCaHK selects the Ca H&K detector for triggering.
	TriggerCaHK bool

	// Exptime is the exposure time in seconds. Always positive.
	Exptime float64

	// NExp is the number of exposures to take with these settings.
	// Always at least 1.
	NExp int

	// SSSScience opens the science fiber source select shutter.
	SSSScience bool

	// SSSSky opens the sky fiber source select shutter.
	SSSSky bool

	// SSSCalSciSky opens the calibration-to-science/sky source select shutter.
	SSSCalSciSky bool

	// SSSSoCalSci opens the SoCal science source select shutter.
	SSSSoCalSci bool

	// SSSSoCalCal opens the SoCal calibration source select shutter.
	SSSSoCalCal bool

	// TSScrambler opens the scrambler timed shutter during the exposure.
	TSScrambler bool

	// TSSimulCal opens the simultaneous calibration timed shutter.
	TSSimulCal bool

	// TSFFFiber opens the flat-field fiber timed shutter.
	TSFFFiber bool

	// TSCaHK opens the Ca H&K timed shutter.
	TSCaHK bool

	// ND1 is the neutral-density filter label for the first filter wheel
	// (at the octagon output), e.g. "OD 0.1".
	ND1 NDFilter

	// ND2 is the neutral-density filter label for the second filter wheel,
	// e.g. "OD 0.8".
	ND2 NDFilter
}
