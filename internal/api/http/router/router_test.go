package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dsemenov/linkmark/internal/api/http/httpctx"
	"github.com/dsemenov/linkmark/internal/mocks"
	"github.com/dsemenov/linkmark/internal/model"
	"github.com/dsemenov/linkmark/internal/service"
	"github.com/dsemenov/linkmark/internal/testutil"
	"github.com/dsemenov/linkmark/internal/token"
)

func makeHandler(t *testing.T, userStore *mocks.UserStore) (http.Handler, model.TokenManager) {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	tokens := token.NewJWT("test-secret")
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userStore, mocks.NewPasswordHasher(t), tokens, lg)
	userService := service.NewUser(userStore, lg)
	bookmarkService := service.NewBookmark(mocks.NewBookmarkStore(t), lg)

	return New(authService, userService, bookmarkService, tokens, ctxMgr, lg).Handler(), tokens
}

func TestRouter_Health(t *testing.T) {
	h, _ := makeHandler(t, mocks.NewUserStore(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProtectedWithoutToken(t *testing.T) {
	h, _ := makeHandler(t, mocks.NewUserStore(t))

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/me"},
		{http.MethodPatch, "/users"},
		{http.MethodGet, "/bookmarks"},
		{http.MethodPost, "/bookmarks"},
		{http.MethodDelete, "/bookmarks/1"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_ProtectedWithToken(t *testing.T) {
	userStore := mocks.NewUserStore(t)
	userStore.On("GetByID", mock.Anything, int64(1)).
		Return(model.User{ID: 1, Email: "ann@example.com"}, nil)

	h, tokens := makeHandler(t, userStore)

	accessToken, err := tokens.GenerateAccessToken(1, "ann@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ann@example.com")
}
