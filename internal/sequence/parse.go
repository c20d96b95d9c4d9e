package sequence

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/obsops/calseq/internal/validators"
	"github.com/obsops/calseq/models"
)

// Sequence file keys. The parser accepts exactly this set; anything else is
// an ErrUnknownKey. Boolean keys are optional and default to false, all other
// keys are required.
const (
	KeyOctagonSource = "OctagonSource"
	KeyWarmUp        = "WarmUp"
	KeyTriggerRed    = "TriggerRed"
	KeyTriggerGreen  = "TriggerGreen"
	KeyTriggerCaHK   = "TriggerCaHK"
	KeyExptime       = "Exptime"
	KeyNExp          = "nExp"
	KeySSSScience    = "SSS_Science"
	KeySSSSky        = "SSS_Sky"
	KeySSSCalSciSky  = "SSS_CalSciSky"
	KeySSSSoCalSci   = "SSS_SoCalSci"
	KeySSSSoCalCal   = "SSS_SoCalCal"
	KeyTSScrambler   = "TS_Scrambler"
	KeyTSSimulCal    = "TS_SimulCal"
	KeyTSFFFiber     = "TS_FF_Fiber"
	KeyTSCaHK        = "TS_CaHK"
	KeyND1           = "ND1"
	KeyND2           = "ND2"
)

// requiredKeys are the keys that must be present in every sequence file.
// Boolean shutter and trigger keys are deliberately absent: an unlisted
// boolean means false.
var requiredKeys = []string{
	KeyOctagonSource,
	KeyWarmUp,
	KeyExptime,
	KeyNExp,
	KeyND1,
	KeyND2,
}

// validatedFields maps parsed fields onto the domain validator's field names
// so a domain violation can be reported against its file key.
var validatedFields = []string{
	validators.FieldOctagonSource,
	validators.FieldWarmUp,
	validators.FieldExptime,
	validators.FieldNExp,
	validators.FieldND1,
	validators.FieldND2,
}

var requestValidator = validators.NewExposureRequestValidator()

// ParseFile loads a sequence file from path. The returned request carries the
// path in SourceFile, and any *ParseError is annotated with it.
func ParseFile(ctx context.Context, path string) (*models.ExposureRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening sequence file: %w", err)
	}
	defer f.Close()

	req, err := parse(ctx, f, path)
	if err != nil {
		return nil, err
	}

	req.SourceFile = path
	return req, nil
}

// Parse reads one exposure request from r. On success the request has a
// freshly generated ID and every boolean that was absent from the input set
// to false. On failure the returned error is a *ParseError.
func Parse(ctx context.Context, r io.Reader) (*models.ExposureRequest, error) {
	return parse(ctx, r, "")
}

func parse(ctx context.Context, r io.Reader, file string) (*models.ExposureRequest, error) {
	req := &models.ExposureRequest{}
	seen := make(map[string]int, len(requiredKeys))

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, &ParseError{File: file, Line: lineNo, Err: ErrMalformedLine}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if _, dup := seen[key]; dup {
			return nil, &ParseError{File: file, Line: lineNo, Key: key, Err: ErrDuplicateKey}
		}
		seen[key] = lineNo

		if err := setField(req, key, value); err != nil {
			return nil, &ParseError{File: file, Line: lineNo, Key: key, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading sequence file: %w", err)
	}

	for _, key := range requiredKeys {
		if _, ok := seen[key]; !ok {
			return nil, &ParseError{File: file, Key: key, Err: ErrMissingKey}
		}
	}

	// Domain checks run per field so violations are reported against the
	// offending file key.
	for _, field := range validatedFields {
		if err := requestValidator.Validate(ctx, req, field); err != nil {
			return nil, &ParseError{File: file, Line: seen[field], Key: field, Err: err}
		}
	}

	req.ID = uuid.New()
	return req, nil
}

// setField converts value to the declared type of key and stores it in req.
func setField(req *models.ExposureRequest, key, value string) error {
	switch key {
	case KeyOctagonSource:
		req.OctagonSource = models.OctagonSource(value)
	case KeyWarmUp:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadInteger, value)
		}
		req.WarmUp = n
	case KeyExptime:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadNumber, value)
		}
		req.Exptime = f
	case KeyNExp:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadInteger, value)
		}
		req.NExp = n
	case KeyND1:
		req.ND1 = models.NDFilter(value)
	case KeyND2:
		req.ND2 = models.NDFilter(value)
	case KeyTriggerRed:
		return setBool(&req.TriggerRed, value)
	case KeyTriggerGreen:
		return setBool(&req.TriggerGreen, value)
	case KeyTriggerCaHK:
		return setBool(&req.TriggerCaHK, value)
	case KeySSSScience:
		return setBool(&req.SSSScience, value)
	case KeySSSSky:
		return setBool(&req.SSSSky, value)
	case KeySSSCalSciSky:
		return setBool(&req.SSSCalSciSky, value)
	case KeySSSSoCalSci:
		return setBool(&req.SSSSoCalSci, value)
	case KeySSSSoCalCal:
		return setBool(&req.SSSSoCalCal, value)
	case KeyTSScrambler:
		return setBool(&req.TSScrambler, value)
	case KeyTSSimulCal:
		return setBool(&req.TSSimulCal, value)
	case KeyTSFFFiber:
		return setBool(&req.TSFFFiber, value)
	case KeyTSCaHK:
		return setBool(&req.TSCaHK, value)
	default:
		return ErrUnknownKey
	}

	return nil
}

// setBool parses one of the recognized boolean tokens into dst.
// Recognized tokens (case-insensitive): true/false, yes/no, on/off, 1/0.
func setBool(dst *bool, value string) error {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return fmt.Errorf("%w: %q", ErrBadBoolean, value)
	}

	return nil
}
