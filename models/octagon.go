package models

// OctagonSource names a position of the octagon mirror, i.e. which source is
// fed into the calibration bench. The string value is the exact token used
// both in sequence files and by the instrument keyword layer.
type OctagonSource string

const (
	// OctagonHome is the parked position; no source is fed.
	OctagonHome OctagonSource = "Home"

	// EtalonFiber feeds the etalon reference fiber.
	EtalonFiber OctagonSource = "EtalonFiber"

	// BrdbandFiber feeds the broadband (flat-field) lamp fiber.
	BrdbandFiber OctagonSource = "BrdbandFiber"

	// UGold feeds the gold-standard Uranium-Neon hollow cathode lamp.
	UGold OctagonSource = "U_gold"

	// UDaily feeds the daily-use Uranium-Neon hollow cathode lamp.
	UDaily OctagonSource = "U_daily"

	// ThDaily feeds the daily-use Thorium-Argon hollow cathode lamp.
	ThDaily OctagonSource = "Th_daily"

	// ThGold feeds the gold-standard Thorium-Argon hollow cathode lamp.
	ThGold OctagonSource = "Th_gold"

	// SoCalCalFib feeds the solar calibrator calibration fiber.
	SoCalCalFib OctagonSource = "SoCal-CalFib"

	// LFCFiber feeds the laser frequency comb fiber.
	LFCFiber OctagonSource = "LFCFiber"
)

func (s OctagonSource) String() string {
	return string(s)
}
