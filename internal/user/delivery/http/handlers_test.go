package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbip/internal/middleware"
	"bbip/internal/model"
	"bbip/internal/user"
	"bbip/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeUseCase struct {
	err        error
	lastScope  model.Scope
	lastUpdate user.UpdateProfileInput
}

var sampleUser = user.User{
	ID:        "u-1",
	Name:      "민지",
	Email:     "minji@example.com",
	Emoji:     "🐔",
	CreatedAt: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
}

func (f *fakeUseCase) Register(ctx context.Context, in user.RegisterInput) (user.AuthOutput, error) {
	if f.err != nil {
		return user.AuthOutput{}, f.err
	}
	return user.AuthOutput{Token: "tok", User: sampleUser}, nil
}

func (f *fakeUseCase) Login(ctx context.Context, in user.LoginInput) (user.AuthOutput, error) {
	if f.err != nil {
		return user.AuthOutput{}, f.err
	}
	return user.AuthOutput{Token: "tok", User: sampleUser}, nil
}

func (f *fakeUseCase) Me(ctx context.Context, sc model.Scope) (user.MeOutput, error) {
	f.lastScope = sc
	if f.err != nil {
		return user.MeOutput{}, f.err
	}
	return user.MeOutput{User: sampleUser}, nil
}

func (f *fakeUseCase) UpdateProfile(ctx context.Context, sc model.Scope, in user.UpdateProfileInput) (user.UpdateProfileOutput, error) {
	f.lastScope, f.lastUpdate = sc, in
	if f.err != nil {
		return user.UpdateProfileOutput{}, f.err
	}
	return user.UpdateProfileOutput{User: sampleUser}, nil
}

func setupRouter(t *testing.T, uc user.UseCase, perMin int) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager, err := scope.New("test-secret", time.Hour)
	require.NoError(t, err)
	token, err := jwtManager.CreateToken(scope.Payload{UserID: "u-1"})
	require.NoError(t, err)

	r := gin.New()
	mw := middleware.New(&mockLogger{}, jwtManager, middleware.Config{RateLimitPerMin: perMin})
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc), mw)
	return r, token
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r, _ := setupRouter(t, &fakeUseCase{}, 0)

	w := do(r, http.MethodPost, "/api/v1/auth/register", "", `{"name":"민지","email":"minji@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data authResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tok", body.Data.Token)
	assert.Equal(t, "u-1", body.Data.User.ID)
	assert.NotContains(t, w.Body.String(), "password")

	w = do(r, http.MethodPost, "/api/v1/auth/register", "", `{"name":"민지","email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	// 6 per minute gives a burst of one.
	r, _ := setupRouter(t, &fakeUseCase{}, 6)

	body := `{"email":"minji@example.com","password":"secret1"}`
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/v1/auth/login", "", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/v1/auth/login", "", body).Code)
}

func TestMe(t *testing.T) {
	uc := &fakeUseCase{}
	r, token := setupRouter(t, uc, 0)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/v1/auth/me", "", "").Code)

	w := do(r, http.MethodGet, "/api/v1/auth/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-1", uc.lastScope.UserID)
}

func TestUpdateProfile(t *testing.T) {
	uc := &fakeUseCase{}
	r, token := setupRouter(t, uc, 0)

	w := do(r, http.MethodPut, "/api/v1/user", token, `{"emoji":"🐯"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.lastUpdate.Emoji)
	assert.Equal(t, "🐯", *uc.lastUpdate.Emoji)
	assert.Nil(t, uc.lastUpdate.Name)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{user.ErrInvalidPayload, http.StatusBadRequest},
		{user.ErrEmailTaken, http.StatusConflict},
		{user.ErrInvalidCredentials, http.StatusUnauthorized},
		{user.ErrUserNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r, _ := setupRouter(t, &fakeUseCase{err: tt.err}, 0)

			w := do(r, http.MethodPost, "/api/v1/auth/login", "", `{"email":"a@b.com","password":"x"}`)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
