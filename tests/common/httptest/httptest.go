//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/cookie"
	"venue-booking-web/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest executes a request with optional form values and cookies.
func PerformRequest(t *testing.T, router http.Handler, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", gin.MIMEPOSTForm)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// SessionCookie builds the signed cookie a browser holds after logging in as resp.
// It uses the keys of config.NewTestConfig.
func SessionCookie(t *testing.T, resp user.LoginResponse) *http.Cookie {
	t.Helper()

	identity := resp.Identity()
	raw, err := json.Marshal(session.Record{Token: resp.Token, User: &identity})
	require.NoError(t, err)

	value, err := cookie.NewJar(config.NewTestConfig().Cookie).Encode(session.StorageKey, string(raw))
	require.NoError(t, err)

	return &http.Cookie{
		Name:  session.StorageKey,
		Value: value,
	}
}

// extracts specific cookie by name from response
func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	res := w.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
