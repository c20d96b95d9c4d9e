package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/obsops/calseq/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping). The names match the sequence file keys.
const (
	// FieldOctagonSource targets the octagon mirror source selection.
	FieldOctagonSource = "OctagonSource"

	// FieldWarmUp targets the lamp warm-up wait in seconds.
	FieldWarmUp = "WarmUp"

	// FieldExptime targets the exposure time in seconds.
	FieldExptime = "Exptime"

	// FieldNExp targets the number of exposures to take.
	FieldNExp = "nExp"

	// FieldND1 targets the first neutral-density filter wheel label.
	FieldND1 = "ND1"

	// FieldND2 targets the second neutral-density filter wheel label.
	FieldND2 = "ND2"
)

// allowedOctagonSources is the exhaustive set of octagon positions accepted
// by the validator. Any OctagonSource not present in this slice is invalid.
var allowedOctagonSources = []models.OctagonSource{
	models.OctagonHome,
	models.EtalonFiber,
	models.BrdbandFiber,
	models.UGold,
	models.UDaily,
	models.ThDaily,
	models.ThGold,
	models.SoCalCalFib,
	models.LFCFiber,
}

// ndLabelPattern matches neutral-density filter labels of form "OD <number>",
// e.g. "OD 0.1", "OD 4.0".
var ndLabelPattern = regexp.MustCompile(`^OD \d+(\.\d+)?$`)

// ExposureRequestValidator implements the Validator interface for the
// ExposureRequest domain model.
//
// It supports both value and pointer receivers for the model type and allows
// optional field-level scoping via variadic field name arguments.
type ExposureRequestValidator struct {
}

// NewExposureRequestValidator constructs a new ExposureRequestValidator
// and returns it as the Validator interface.
func NewExposureRequestValidator() Validator {
	return &ExposureRequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// Passing no field names validates every field.
func (v *ExposureRequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch req := value.(type) {
	case models.ExposureRequest:
		return v.validateExposureRequest(req, fields...)
	case *models.ExposureRequest:
		return v.validateExposureRequest(*req, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *ExposureRequestValidator) validateExposureRequest(req models.ExposureRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldOctagonSource,
			FieldWarmUp,
			FieldExptime,
			FieldNExp,
			FieldND1,
			FieldND2,
		}
	}

	for _, field := range fields {
		switch field {
		case FieldOctagonSource:
			if err := v.validateOctagonSource(req.OctagonSource); err != nil {
				return err
			}
		case FieldWarmUp:
			if req.WarmUp < 0 {
				return fmt.Errorf("%w: %d", ErrNegativeWarmUp, req.WarmUp)
			}
		case FieldExptime:
			if req.Exptime <= 0 {
				return fmt.Errorf("%w: %g", ErrNonPositiveExptime, req.Exptime)
			}
		case FieldNExp:
			if req.NExp < 1 {
				return fmt.Errorf("%w: %d", ErrNonPositiveNExp, req.NExp)
			}
		case FieldND1:
			if err := v.validateNDFilter(req.ND1); err != nil {
				return err
			}
		case FieldND2:
			if err := v.validateNDFilter(req.ND2); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ExposureRequestValidator) validateOctagonSource(source models.OctagonSource) error {
	for _, allowed := range allowedOctagonSources {
		if source == allowed {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownOctagonSource, source)
}

func (v *ExposureRequestValidator) validateNDFilter(label models.NDFilter) error {
	if !ndLabelPattern.MatchString(string(label)) {
		return fmt.Errorf("%w: %q", ErrBadNDFilterLabel, label)
	}

	return nil
}
