package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/yoga-studio/internal/service"
	"github.com/MKhiriev/yoga-studio/internal/store"
	"github.com/MKhiriev/yoga-studio/internal/utils"
	"github.com/MKhiriev/yoga-studio/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVersionRoute_IsPublic(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := doRequest(t, router, http.MethodGet, "/api/version/", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestMetricsRoute_ExposesRequestCounters(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("dev")

	doRequest(t, router, http.MethodGet, "/api/version/", "", false)
	rec := doRequest(t, router, http.MethodGet, "/metrics", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "yoga_studio_http_requests_total")
	// chi reports the pattern without the trailing slash
	assert.Contains(t, rec.Body.String(), `method="GET",route="/api/version",status="200"`)
}

func TestMetricsRoute_LabelsUnauthenticatedRequests(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/session/3", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `method="GET",route="unauthenticated",status="401"`)
}

func TestRouter_Fallbacks(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/unknown", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeErrorResponse(t, rec).Status)

	rec = doRequest(t, router, http.MethodPatch, "/api/auth/login", "", false)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_TraceIDHeader(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("dev")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/session", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &validators.ValidationError{}, http.StatusBadRequest},
		{"path param", fmt.Errorf("%w: id", ErrInvalidPathParam), http.StatusBadRequest},
		{"empty body", utils.ErrEmptyBody, http.StatusBadRequest},
		{"email taken", service.ErrEmailTaken, http.StatusBadRequest},
		{"already participating", service.ErrAlreadyParticipating, http.StatusBadRequest},
		{"not participating", service.ErrNotParticipating, http.StatusBadRequest},
		{"unknown teacher", service.ErrUnknownTeacher, http.StatusBadRequest},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owner", service.ErrNotOwner, http.StatusUnauthorized},
		{"session not found", fmt.Errorf("%w: %w", service.ErrSessionNotFound, store.ErrSessionNotFound), http.StatusNotFound},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"teacher not found", service.ErrTeacherNotFound, http.StatusNotFound},
		{"storage failure", store.ErrExecutingStatement, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
