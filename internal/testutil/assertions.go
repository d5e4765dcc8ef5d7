package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response shape with the data payload left raw.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// DecodeEnvelope reads and closes the body and returns the envelope.
func DecodeEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var env Envelope
	require.NoError(t, json.Unmarshal(body, &env), "failed to unmarshal envelope: %s", string(body))
	return env
}

// AssertSuccess decodes a successful envelope and unmarshals its data into v.
func AssertSuccess(t *testing.T, resp *http.Response, expectedStatus int, v any) {
	t.Helper()

	AssertStatusCode(t, resp, expectedStatus)
	env := DecodeEnvelope(t, resp)
	require.True(t, env.Success, "expected success envelope, got error: %s", env.Error)

	if v != nil {
		require.NoError(t, json.Unmarshal(env.Data, v), "failed to unmarshal data: %s", string(env.Data))
	}
}

// AssertError verifies a failure envelope whose error contains the fragment.
func AssertError(t *testing.T, resp *http.Response, expectedStatus int, fragment string) {
	t.Helper()

	AssertStatusCode(t, resp, expectedStatus)
	env := DecodeEnvelope(t, resp)
	assert.False(t, env.Success, "expected error envelope")
	assert.Contains(t, env.Error, fragment, "error message mismatch")
}
