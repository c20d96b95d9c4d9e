package keywords

import "github.com/obsops/calseq/models"

// outlets maps calibration lamp sources to their power outlets in the
// kpfpower keyword service. Sources absent from the map (fibers fed by
// always-on or externally controlled sources) need no power step.
var outlets = map[models.OctagonSource]string{
	models.BrdbandFiber: "OUTLET_CAL2_2",
	models.ThGold:       "OUTLET_CAL2_5",
	models.ThDaily:      "OUTLET_CAL2_6",
	models.UGold:        "OUTLET_CAL2_7",
	models.UDaily:       "OUTLET_CAL2_8",
}

// Outlet returns the kpfpower outlet keyword controlling the lamp behind
// source. The second return is false when the source has no controllable
// outlet.
func Outlet(source models.OctagonSource) (string, bool) {
	outlet, ok := outlets[source]
	return outlet, ok
}
