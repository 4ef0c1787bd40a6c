package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func MakeJsonBody(t *testing.T, body any) io.Reader {
	b, err := json.Marshal(body)
	assert.NoError(t, err)
	assert.NotNil(t, b)
	return bytes.NewReader(b)
}

func AssertApiError(t *testing.T, w *httptest.ResponseRecorder, errcode string, error string) {
	jsonErr := make(map[string]any)
	err := json.Unmarshal(w.Body.Bytes(), &jsonErr)
	assert.NoError(t, err)
	assert.Equal(t, errcode, jsonErr["errcode"])
	assert.Equal(t, error, jsonErr["error"])
}

func AssertJsonBody(t *testing.T, w *httptest.ResponseRecorder, expected any) {
	expectedJson, err := json.Marshal(expected)
	assert.NoError(t, err)
	assert.JSONEq(t, string(expectedJson), w.Body.String())
}

// JsonField - Returns the value at the gjson path in the response body, failing the test if it is absent.
func JsonField(t *testing.T, w *httptest.ResponseRecorder, path string) gjson.Result {
	assert.True(t, gjson.Valid(w.Body.String()), "response body is not valid JSON")
	res := gjson.Get(w.Body.String(), path)
	assert.True(t, res.Exists(), "missing field %s in %s", path, w.Body.String())
	return res
}

// AssertNoJsonField - Fails the test if the gjson path exists in the response body.
func AssertNoJsonField(t *testing.T, w *httptest.ResponseRecorder, path string) {
	assert.False(t, gjson.Get(w.Body.String(), path).Exists(), "unexpected field %s in %s", path, w.Body.String())
}
