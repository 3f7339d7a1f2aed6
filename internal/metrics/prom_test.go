package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(PasswordsGenerated.WithLabelValues("strong"))
	RecordGeneration("strong", 20)
	RecordGeneration("strong", 12)
	assert.Equal(t, before+2, testutil.ToFloat64(PasswordsGenerated.WithLabelValues("strong")))
}

func TestRecordStrengthCheck(t *testing.T) {
	before := testutil.ToFloat64(StrengthChecks.WithLabelValues("weak"))
	RecordStrengthCheck("weak")
	assert.Equal(t, before+1, testutil.ToFloat64(StrengthChecks.WithLabelValues("weak")))
}

func TestRecordError(t *testing.T) {
	before := testutil.ToFloat64(Errors.WithLabelValues("generate", "invalid_options"))
	RecordError("generate", "invalid_options")
	assert.Equal(t, before+1, testutil.ToFloat64(Errors.WithLabelValues("generate", "invalid_options")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordGeneration("medium", 8)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "passgen_passwords_generated_total")
	assert.Contains(t, string(body), "passgen_password_length_bucket")
}
