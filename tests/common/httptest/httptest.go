//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type Option func(*http.Request)

// WithToken sends a bearer token; empty tokens are skipped so guest calls read the same
func WithToken(token string) Option {
	return func(r *http.Request) {
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func WithCookies(cookies []*http.Cookie) Option {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

// Do serves one request against h. A non-nil body is sent as JSON.
func Do(t *testing.T, h http.Handler, method, path string, body any, opts ...Option) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(h, req, opts)
}

func PerformRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, h, method, path, body, WithToken(token))
}

func PerformRequestWithCookies(t *testing.T, h http.Handler, method, path string, body any, cookies []*http.Cookie, token string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, h, method, path, body, WithCookies(cookies), WithToken(token))
}

// PerformUpload posts a single-file multipart form. An empty field sends a form with no file part.
func PerformUpload(t *testing.T, h http.Handler, path, field, filename, contentType string, content []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if field != "" {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return serve(h, req, []Option{WithToken(token)})
}

func serve(h http.Handler, req *http.Request, opts []Option) *httptest.ResponseRecorder {
	for _, o := range opts {
		o(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func ExtractCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	return w.Result().Cookies()
}

// ExtractCookie returns the named cookie or nil
func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	cookies := w.Result().Cookies()
	i := slices.IndexFunc(cookies, func(c *http.Cookie) bool { return c.Name == name })
	if i < 0 {
		return nil
	}
	return cookies[i]
}
