// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/utils"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		wantSame      bool
		wantGenerated bool
	}{
		{name: "reuses caller trace id", header: "caller-trace", wantSame: true},
		{name: "generates missing trace id", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(utils.TraceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(utils.TraceIDHeader)
			assert.Equal(t, got, ctxTraceID)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			}
			if tt.wantGenerated {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithLogging_PassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200 on write", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		n, err := w.Write([]byte("abc"))
		require.NoError(t, err)

		assert.Equal(t, 3, n)
		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 3, w.size)
	})

	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusNotFound)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("x"))
		_, _ = w.Write([]byte("yz"))

		assert.Equal(t, http.StatusNotFound, w.status)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 3, w.size)
	})
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Length", "999")
		_, _ = w.Write(body)
	})

	tests := []struct {
		name            string
		body            []byte
		contentEncoding string
		acceptEncoding  string
		wantStatus      int
		wantBody        string
		wantGzipped     bool
	}{
		{
			name:       "plain in plain out",
			body:       []byte(`{"zone_id":"z1"}`),
			wantStatus: http.StatusOK,
			wantBody:   `{"zone_id":"z1"}`,
		},
		{
			name:            "gzip request body is inflated",
			body:            gzipped(t, `{"zone_id":"z2"}`),
			contentEncoding: "gzip",
			wantStatus:      http.StatusOK,
			wantBody:        `{"zone_id":"z2"}`,
		},
		{
			name:           "response compressed when accepted",
			body:           []byte("hello"),
			acceptEncoding: "deflate, gzip",
			wantStatus:     http.StatusOK,
			wantBody:       "hello",
			wantGzipped:    true,
		},
		{
			name:            "corrupt gzip body",
			body:            []byte("definitely not gzip"),
			contentEncoding: "gzip",
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rec := httptest.NewRecorder()
			withGZip(echo).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			body := rec.Body.Bytes()
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Empty(t, rec.Header().Get("Content-Length"))

				zr, err := gzip.NewReader(bytes.NewReader(body))
				require.NoError(t, err)
				body, err = io.ReadAll(zr)
				require.NoError(t, err)
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestPooledReadCloser_ClosesOnce(t *testing.T) {
	calls := 0
	rc := &pooledReadCloser{Reader: strings.NewReader(""), onClose: func() { calls++ }}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 1, calls)
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Get("/items", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Post("/items", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
		r.Delete("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered GET", method: http.MethodGet, path: "/api/items", wantStatus: http.StatusOK},
		{name: "registered POST", method: http.MethodPost, path: "/api/items", wantStatus: http.StatusCreated},
		{name: "parameterised DELETE", method: http.MethodDelete, path: "/api/items/7", wantStatus: http.StatusNoContent},
		{name: "wrong method hides route", method: http.MethodPatch, path: "/api/items", wantStatus: http.StatusNotFound},
		{name: "wrong method on parameterised route", method: http.MethodGet, path: "/api/items/7", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func Test_routeHandlesMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Get("/version", func(http.ResponseWriter, *http.Request) {})
	})

	assert.True(t, routeHandlesMethod(router.Routes(), "/api/version", http.MethodGet))
	assert.False(t, routeHandlesMethod(router.Routes(), "/api/version", http.MethodPost))
	assert.False(t, routeHandlesMethod(router.Routes(), "/version", http.MethodGet))
}
