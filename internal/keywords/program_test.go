package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsops/calseq/models"
)

func thoriumRequest() models.ExposureRequest {
	return models.ExposureRequest{
		OctagonSource: models.ThDaily,
		WarmUp:        600,
		TriggerRed:    true,
		TriggerGreen:  true,
		Exptime:       30,
		NExp:          2,
		SSSCalSciSky:  true,
		TSScrambler:   true,
		ND1:           models.NDFilter("OD 1.0"),
		ND2:           models.NDFilter("OD 0.1"),
	}
}

// TestBuildProgram_SingleRequest verifies power-on, warm-up, and NExp
// expansion for one request.
func TestBuildProgram_SingleRequest(t *testing.T) {
	p := BuildProgram([]models.ExposureRequest{thoriumRequest()}, Options{})

	require.Len(t, p.PowerOn, 1)
	assert.Equal(t, models.ThDaily, p.PowerOn[0].Source)
	assert.Equal(t, "OUTLET_CAL2_6", p.PowerOn[0].Outlet)
	assert.Equal(t, 600, p.WarmUp)

	require.Len(t, p.Visits, 1)
	assert.Equal(t, 1, p.Visits[0].Repeat)
	assert.Equal(t, 1, p.Visits[0].Index)
	assert.Equal(t, 2, p.Visits[0].Exposures)
	assert.Len(t, p.Visits[0].Assignments, 7)

	assert.Empty(t, p.PowerOff)
}

// TestBuildProgram_Repeats verifies that the request set is visited in order
// once per repeat while power steps are emitted only once.
func TestBuildProgram_Repeats(t *testing.T) {
	reqs := []models.ExposureRequest{thoriumRequest(), brdbandRequest()}

	p := BuildProgram(reqs, Options{Repeats: 3})

	require.Len(t, p.Visits, 6)
	assert.Equal(t, 1, p.Visits[0].Repeat)
	assert.Equal(t, 1, p.Visits[0].Index)
	assert.Equal(t, 2, p.Visits[1].Index)
	assert.Equal(t, 3, p.Visits[5].Repeat)
	assert.Equal(t, 2, p.Visits[5].Index)

	// One power step per distinct lamp regardless of repeats.
	require.Len(t, p.PowerOn, 2)
	assert.Equal(t, models.ThDaily, p.PowerOn[0].Source)
	assert.Equal(t, models.BrdbandFiber, p.PowerOn[1].Source)

	// Warm-up is the slowest lamp across all requests.
	assert.Equal(t, 600, p.WarmUp)
}

// TestBuildProgram_UnpoweredSourceHasNoPowerStep verifies that fiber sources
// without an outlet produce no power steps.
func TestBuildProgram_UnpoweredSourceHasNoPowerStep(t *testing.T) {
	req := thoriumRequest()
	req.OctagonSource = models.EtalonFiber
	req.WarmUp = 0

	p := BuildProgram([]models.ExposureRequest{req}, Options{LampsOff: true})

	assert.Empty(t, p.PowerOn)
	assert.Empty(t, p.PowerOff)
	assert.Zero(t, p.WarmUp)
}

// TestBuildProgram_LampsOff verifies the power-off epilogue mirrors the
// power-on steps.
func TestBuildProgram_LampsOff(t *testing.T) {
	p := BuildProgram([]models.ExposureRequest{thoriumRequest()}, Options{LampsOff: true})

	require.Len(t, p.PowerOff, 1)
	assert.Equal(t, p.PowerOn, p.PowerOff)
}

// TestBuildProgram_RepeatFloor verifies that repeat counts below 1 behave
// like a single pass.
func TestBuildProgram_RepeatFloor(t *testing.T) {
	p := BuildProgram([]models.ExposureRequest{thoriumRequest()}, Options{Repeats: -2})
	assert.Len(t, p.Visits, 1)
}

// TestProgram_Render verifies the rendered listing mentions every step in
// order.
func TestProgram_Render(t *testing.T) {
	p := BuildProgram([]models.ExposureRequest{thoriumRequest()}, Options{Repeats: 2, LampsOff: true})

	var b strings.Builder
	require.NoError(t, p.Render(&b))
	out := b.String()

	assert.Contains(t, out, "power on Th_daily (kpfpower.OUTLET_CAL2_6)")
	assert.Contains(t, out, "wait 600 s for lamp warm-up")
	assert.Contains(t, out, "repeat 1/2, sequence 1/1")
	assert.Contains(t, out, "kpfmot.OCTAGON = Th_daily")
	assert.Contains(t, out, "kpfexpose.TRIG_TARG = Red,Green")
	assert.Contains(t, out, "start exposure 1/2 (30 s)")
	assert.Contains(t, out, "start exposure 2/2 (30 s)")
	assert.Contains(t, out, "power off Th_daily (kpfpower.OUTLET_CAL2_6)")

	powerOn := strings.Index(out, "power on")
	warmUp := strings.Index(out, "wait 600")
	firstVisit := strings.Index(out, "repeat 1/2")
	powerOff := strings.Index(out, "power off")
	assert.Less(t, powerOn, warmUp)
	assert.Less(t, warmUp, firstVisit)
	assert.Less(t, firstVisit, powerOff)
}
