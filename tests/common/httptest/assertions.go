//go:build unit || e2e

package httptest

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertPage checks the status and that the unescaped body contains every fragment.
func AssertPage(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, fragments ...string) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}
	body := html.UnescapeString(w.Body.String())
	for _, f := range fragments {
		assert.Contains(t, body, f)
	}
}

// AssertNoFragment fails when the unescaped body contains any fragment.
func AssertNoFragment(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()

	body := html.UnescapeString(w.Body.String())
	for _, f := range fragments {
		assert.NotContains(t, body, f)
	}
}

func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	assert.Equal(t, http.StatusSeeOther, w.Code,
		fmt.Sprintf("Expected redirect, got %d. Response: %s", w.Code, w.Body.String()))
	assert.Equal(t, location, w.Header().Get("Location"))
}
