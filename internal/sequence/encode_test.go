package sequence

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsops/calseq/models"
)

// fullRequest exercises every field with a non-zero value.
func fullRequest() models.ExposureRequest {
	return models.ExposureRequest{
		OctagonSource: models.ThDaily,
		WarmUp:        300,
		TriggerRed:    true,
		TriggerGreen:  true,
		TriggerCaHK:   true,
		Exptime:       12.5,
		NExp:          4,
		SSSScience:    true,
		SSSSky:        true,
		SSSCalSciSky:  true,
		SSSSoCalSci:   true,
		SSSSoCalCal:   true,
		TSScrambler:   true,
		TSSimulCal:    true,
		TSFFFiber:     true,
		TSCaHK:        true,
		ND1:           models.NDFilter("OD 1.0"),
		ND2:           models.NDFilter("OD 4.0"),
	}
}

// TestFormat_RoundTrip verifies that parsing the canonical encoding of a
// request yields an identical record.
func TestFormat_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  models.ExposureRequest
	}{
		{"all fields set", fullRequest()},
		{
			"sparse request",
			models.ExposureRequest{
				OctagonSource: models.EtalonFiber,
				WarmUp:        0,
				TriggerGreen:  true,
				Exptime:       0.5,
				NExp:          1,
				ND1:           models.NDFilter("OD 0.1"),
				ND2:           models.NDFilter("OD 0.8"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(context.Background(), strings.NewReader(Format(tt.req)))
			require.NoError(t, err)

			// ID and SourceFile are hand-off bookkeeping, not file content.
			parsed.ID = tt.req.ID
			parsed.SourceFile = tt.req.SourceFile
			assert.Equal(t, tt.req, *parsed)
		})
	}
}

// TestFormat_CanonicalForm verifies the fixed key order and the value
// rendering of the canonical encoding.
func TestFormat_CanonicalForm(t *testing.T) {
	text := Format(fullRequest())

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, len(encodeOrder))
	assert.Equal(t, "OctagonSource: Th_daily", lines[0])
	assert.Equal(t, "Exptime: 12.5", lines[5])
	assert.Equal(t, "nExp: 4", lines[6])
	assert.Equal(t, "ND2: OD 4.0", lines[len(lines)-1])

	for i, key := range encodeOrder {
		assert.True(t, strings.HasPrefix(lines[i], key+": "), "line %d should start with %q", i, key)
	}
}

// TestEncode_WritesFormat verifies that Encode writes exactly what Format
// renders.
func TestEncode_WritesFormat(t *testing.T) {
	req := fullRequest()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, req))
	assert.Equal(t, Format(req), buf.String())
}
