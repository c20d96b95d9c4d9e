package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsops/calseq/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validRequest() models.ExposureRequest {
	return models.ExposureRequest{
		OctagonSource: models.BrdbandFiber,
		WarmUp:        3,
		TriggerGreen:  true,
		Exptime:       5,
		NExp:          1,
		SSSSky:        true,
		SSSCalSciSky:  true,
		TSScrambler:   true,
		ND1:           models.NDFilter("OD 0.1"),
		ND2:           models.NDFilter("OD 0.8"),
	}
}

// ── Validate ──────────────────────────────────────────────────────────────────

// TestValidate_ValidRequest verifies that a well-formed request passes both
// by value and by pointer.
func TestValidate_ValidRequest(t *testing.T) {
	v := NewExposureRequestValidator()
	req := validRequest()

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

// TestValidate_UnsupportedType verifies the error for foreign types.
func TestValidate_UnsupportedType(t *testing.T) {
	v := NewExposureRequestValidator()

	err := v.Validate(context.Background(), "not a request")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// TestValidate_UnknownField verifies the error for an unknown field scope.
func TestValidate_UnknownField(t *testing.T) {
	v := NewExposureRequestValidator()

	err := v.Validate(context.Background(), validRequest(), "Shutters")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// TestValidate_DomainRules verifies every domain rule via a mutated request.
func TestValidate_DomainRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ExposureRequest)
		want   error
	}{
		{
			"unknown octagon source",
			func(r *models.ExposureRequest) { r.OctagonSource = "MoonFiber" },
			ErrUnknownOctagonSource,
		},
		{
			"empty octagon source",
			func(r *models.ExposureRequest) { r.OctagonSource = "" },
			ErrUnknownOctagonSource,
		},
		{
			"negative warm-up",
			func(r *models.ExposureRequest) { r.WarmUp = -1 },
			ErrNegativeWarmUp,
		},
		{
			"zero exptime",
			func(r *models.ExposureRequest) { r.Exptime = 0 },
			ErrNonPositiveExptime,
		},
		{
			"negative exptime",
			func(r *models.ExposureRequest) { r.Exptime = -2.5 },
			ErrNonPositiveExptime,
		},
		{
			"zero nexp",
			func(r *models.ExposureRequest) { r.NExp = 0 },
			ErrNonPositiveNExp,
		},
		{
			"nd1 without od prefix",
			func(r *models.ExposureRequest) { r.ND1 = "0.1" },
			ErrBadNDFilterLabel,
		},
		{
			"nd2 with non-numeric density",
			func(r *models.ExposureRequest) { r.ND2 = "OD dark" },
			ErrBadNDFilterLabel,
		},
		{
			"nd label lowercase",
			func(r *models.ExposureRequest) { r.ND1 = "od 0.1" },
			ErrBadNDFilterLabel,
		},
	}

	v := NewExposureRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestValidate_FieldScoping verifies that scoping limits which rules run.
func TestValidate_FieldScoping(t *testing.T) {
	v := NewExposureRequestValidator()

	req := validRequest()
	req.Exptime = 0 // invalid, but out of scope below

	require.Error(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), req, FieldOctagonSource, FieldND1))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldExptime), ErrNonPositiveExptime)
}

// TestValidate_AllOctagonPositions verifies every known octagon position is
// accepted, including the parked Home position.
func TestValidate_AllOctagonPositions(t *testing.T) {
	v := NewExposureRequestValidator()

	for _, source := range allowedOctagonSources {
		t.Run(source.String(), func(t *testing.T) {
			req := validRequest()
			req.OctagonSource = source
			assert.NoError(t, v.Validate(context.Background(), req, FieldOctagonSource))
		})
	}
}

// TestValidate_NDLabelFormats spot-checks accepted label shapes.
func TestValidate_NDLabelFormats(t *testing.T) {
	v := NewExposureRequestValidator()

	for _, label := range []models.NDFilter{"OD 0.1", "OD 0.8", "OD 1.0", "OD 4.0", "OD 2"} {
		req := validRequest()
		req.ND1 = label
		assert.NoError(t, v.Validate(context.Background(), req, FieldND1), "label %q", label)
	}
}
