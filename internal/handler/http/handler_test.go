package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/yoga-studio/internal/config"
	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/mock"
	"github.com/MKhiriev/yoga-studio/internal/service"
	"github.com/MKhiriev/yoga-studio/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "valid.jwt.token"

var alice = models.Principal{
	ID:        1,
	Username:  "alice@example.com",
	FirstName: "Alice",
	LastName:  "Martin",
}

type serviceMocks struct {
	auth    *mock.MockAuthService
	user    *mock.MockUserService
	teacher *mock.MockTeacherService
	session *mock.MockSessionService
	appInfo *mock.MockAppInfoService
}

// newTestRouter builds the full router over gomock services.
func newTestRouter(t *testing.T) (http.Handler, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		user:    mock.NewMockUserService(ctrl),
		teacher: mock.NewMockTeacherService(ctrl),
		session: mock.NewMockSessionService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		UserService:    m.user,
		TeacherService: m.teacher,
		SessionService: m.session,
		AppInfoService: m.appInfo,
	}, config.Server{CORSAllowedOrigins: []string{"*"}}, logger.Nop())

	return h.Init(), m
}

// signIn makes testToken resolve to principal.
func (m *serviceMocks) signIn(principal models.Principal) {
	m.auth.EXPECT().VerifyToken(gomock.Any(), testToken).Return(principal.Username, nil).AnyTimes()
	m.auth.EXPECT().LoadPrincipal(gomock.Any(), principal.Username).Return(principal, nil).AnyTimes()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
