package sequence

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/obsops/calseq/models"
)

// encodeOrder fixes the canonical key order of an encoded sequence file.
var encodeOrder = []string{
	KeyOctagonSource,
	KeyWarmUp,
	KeyTriggerRed,
	KeyTriggerGreen,
	KeyTriggerCaHK,
	KeyExptime,
	KeyNExp,
	KeySSSScience,
	KeySSSSky,
	KeySSSCalSciSky,
	KeySSSSoCalSci,
	KeySSSSoCalCal,
	KeyTSScrambler,
	KeyTSSimulCal,
	KeyTSFFFiber,
	KeyTSCaHK,
	KeyND1,
	KeyND2,
}

// Format renders req in the canonical sequence file form: every key on its
// own line in a fixed order, booleans written as true/false. Parsing the
// result yields a record equal to req (ID and SourceFile aside).
func Format(req models.ExposureRequest) string {
	var b strings.Builder
	for _, key := range encodeOrder {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(fieldValue(req, key))
		b.WriteByte('\n')
	}

	return b.String()
}

// Encode writes the canonical form of req to w.
func Encode(w io.Writer, req models.ExposureRequest) error {
	if _, err := io.WriteString(w, Format(req)); err != nil {
		return fmt.Errorf("error encoding exposure request: %w", err)
	}

	return nil
}

func fieldValue(req models.ExposureRequest, key string) string {
	switch key {
	case KeyOctagonSource:
		return req.OctagonSource.String()
	case KeyWarmUp:
		return strconv.Itoa(req.WarmUp)
	case KeyTriggerRed:
		return strconv.FormatBool(req.TriggerRed)
	case KeyTriggerGreen:
		return strconv.FormatBool(req.TriggerGreen)
	case KeyTriggerCaHK:
		return strconv.FormatBool(req.TriggerCaHK)
	case KeyExptime:
		return strconv.FormatFloat(req.Exptime, 'g', -1, 64)
	case KeyNExp:
		return strconv.Itoa(req.NExp)
	case KeySSSScience:
		return strconv.FormatBool(req.SSSScience)
	case KeySSSSky:
		return strconv.FormatBool(req.SSSSky)
	case KeySSSCalSciSky:
		return strconv.FormatBool(req.SSSCalSciSky)
	case KeySSSSoCalSci:
		return strconv.FormatBool(req.SSSSoCalSci)
	case KeySSSSoCalCal:
		return strconv.FormatBool(req.SSSSoCalCal)
	case KeyTSScrambler:
		return strconv.FormatBool(req.TSScrambler)
	case KeyTSSimulCal:
		return strconv.FormatBool(req.TSSimulCal)
	case KeyTSFFFiber:
		return strconv.FormatBool(req.TSFFFiber)
	case KeyTSCaHK:
		return strconv.FormatBool(req.TSCaHK)
	case KeyND1:
		return req.ND1.String()
	case KeyND2:
		return req.ND2.String()
	}

	return ""
}
