//go:build e2e

package helper

import (
	"html"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const csrfField = "gorilla.csrf.Token"

var csrfFieldPattern = regexp.MustCompile(`name="` + regexp.QuoteMeta(csrfField) + `" value="([^"]*)"`)

// Page is one response as a browser would see it. Redirects are not followed.
type Page struct {
	Status   int
	Location string
	Body     string
}

// Browser keeps cookies between requests and posts forms with the CSRF
// token of the last page that rendered one.
type Browser struct {
	t       *testing.T
	baseURL string
	client  *http.Client
	token   string
}

func NewBrowser(t *testing.T, baseURL string) *Browser {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &Browser{
		t:       t,
		baseURL: baseURL,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (b *Browser) Get(path string) Page {
	b.t.Helper()

	req, err := http.NewRequest(http.MethodGet, b.baseURL+path, nil)
	require.NoError(b.t, err)
	return b.do(req)
}

// Post submits form with the current CSRF token.
func (b *Browser) Post(path string, form url.Values) Page {
	b.t.Helper()

	if form == nil {
		form = url.Values{}
	}
	if b.token != "" {
		form.Set(csrfField, b.token)
	}
	return b.PostWithoutToken(path, form)
}

func (b *Browser) PostWithoutToken(path string, form url.Values) Page {
	b.t.Helper()

	req, err := http.NewRequest(http.MethodPost, b.baseURL+path, strings.NewReader(form.Encode()))
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

// Follow loads the redirect target of p.
func (b *Browser) Follow(p Page) Page {
	b.t.Helper()
	require.NotEmpty(b.t, p.Location, "page is not a redirect: %d %s", p.Status, p.Body)
	return b.Get(p.Location)
}

// SetCookie places c in the jar as if the server had set it.
func (b *Browser) SetCookie(c *http.Cookie) {
	u, err := url.Parse(b.baseURL)
	require.NoError(b.t, err)
	b.client.Jar.SetCookies(u, []*http.Cookie{c})
}

func (b *Browser) do(req *http.Request) Page {
	res, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(b.t, err)

	body := html.UnescapeString(string(raw))
	if m := csrfFieldPattern.FindStringSubmatch(body); m != nil {
		b.token = m[1]
	}
	return Page{
		Status:   res.StatusCode,
		Location: res.Header.Get("Location"),
		Body:     body,
	}
}
