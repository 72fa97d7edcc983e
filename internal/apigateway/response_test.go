package apigateway

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONSetsStandardHeaders(t *testing.T) {
	resp := JSON(http.StatusOK, map[string]bool{"success": true})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.JSONEq(t, `{"success": true}`, resp.Body)
}

func TestErrorPassesMessageThrough(t *testing.T) {
	resp := Error(http.StatusInternalServerError, `dial tcp: lookup dynamodb "timeout"`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"error": "dial tcp: lookup dynamodb \"timeout\""}`, resp.Body)
}

func TestNoDataIsPlainText(t *testing.T) {
	resp := NoData("No flights found")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "No flights found", resp.Body)
	assert.Empty(t, resp.Headers)
}
