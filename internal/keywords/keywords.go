package keywords

import (
	"strconv"
	"strings"

	"github.com/obsops/calseq/models"
)

// Keyword services and keywords of the instrument control system.
const (
	ServiceMotors = "kpfmot"
	ServiceExpose = "kpfexpose"
	ServicePower  = "kpfpower"

	KeywordOctagon       = "OCTAGON"
	KeywordND1Pos        = "ND1POS"
	KeywordND2Pos        = "ND2POS"
	KeywordExposure      = "EXPOSURE"
	KeywordTrigTarg      = "TRIG_TARG"
	KeywordSrcShutters   = "SRC_SHUTTERS"
	KeywordTimedShutters = "TIMED_SHUTTERS"
)

// Detector and shutter tokens as the instrument expects them, in the fixed
// order they are joined into list keywords.
const (
	detectorRed   = "Red"
	detectorGreen = "Green"
	detectorCaHK  = "Ca_HK"

	srcShutterSci       = "SciSelect"
	srcShutterSky       = "SkySelect"
	srcShutterSoCalSci  = "SoCalSci"
	srcShutterSoCalCal  = "SoCalCal"
	srcShutterCalSciSky = "Cal_SciSky"

	timedShutterScrambler = "Scrambler"
	timedShutterSimulCal  = "SimulCal"
	timedShutterFFFiber   = "FF_Fiber"
	timedShutterCaHK      = "Ca_HK"
)

// Assignment is a single instrument keyword write, Service.Keyword = Value.
type Assignment struct {
	Service string
	Keyword string
	Value   string
}

func (a Assignment) String() string {
	return a.Service + "." + a.Keyword + " = " + a.Value
}

// Translate returns the ordered keyword assignments that apply req to the
// instrument: octagon position, source select shutters, timed shutters, both
// neutral-density wheels, exposure time, and triggered detectors.
func Translate(req models.ExposureRequest) []Assignment {
	return []Assignment{
		{ServiceMotors, KeywordOctagon, req.OctagonSource.String()},
		{ServiceExpose, KeywordSrcShutters, SourceShutterList(req)},
		{ServiceExpose, KeywordTimedShutters, TimedShutterList(req)},
		{ServiceMotors, KeywordND1Pos, req.ND1.String()},
		{ServiceMotors, KeywordND2Pos, req.ND2.String()},
		{ServiceExpose, KeywordExposure, strconv.FormatFloat(req.Exptime, 'g', -1, 64)},
		{ServiceExpose, KeywordTrigTarg, TriggerList(req)},
	}
}

// TriggerList returns the TRIG_TARG value for req: the comma-joined names of
// the triggered detectors in Red, Green, Ca_HK order.
func TriggerList(req models.ExposureRequest) string {
	var detectors []string
	if req.TriggerRed {
		detectors = append(detectors, detectorRed)
	}
	if req.TriggerGreen {
		detectors = append(detectors, detectorGreen)
	}
	if req.TriggerCaHK {
		detectors = append(detectors, detectorCaHK)
	}

	return strings.Join(detectors, ",")
}

// SourceShutterList returns the SRC_SHUTTERS value for req: the comma-joined
// names of the open source select shutters.
func SourceShutterList(req models.ExposureRequest) string {
	var shutters []string
	if req.SSSScience {
		shutters = append(shutters, srcShutterSci)
	}
	if req.SSSSky {
		shutters = append(shutters, srcShutterSky)
	}
	if req.SSSSoCalSci {
		shutters = append(shutters, srcShutterSoCalSci)
	}
	if req.SSSSoCalCal {
		shutters = append(shutters, srcShutterSoCalCal)
	}
	if req.SSSCalSciSky {
		shutters = append(shutters, srcShutterCalSciSky)
	}

	return strings.Join(shutters, ",")
}

// TimedShutterList returns the TIMED_SHUTTERS value for req: the comma-joined
// names of the timed shutters opened during the exposure.
func TimedShutterList(req models.ExposureRequest) string {
	var shutters []string
	if req.TSScrambler {
		shutters = append(shutters, timedShutterScrambler)
	}
	if req.TSSimulCal {
		shutters = append(shutters, timedShutterSimulCal)
	}
	if req.TSFFFiber {
		shutters = append(shutters, timedShutterFFFiber)
	}
	if req.TSCaHK {
		shutters = append(shutters, timedShutterCaHK)
	}

	return strings.Join(shutters, ",")
}
