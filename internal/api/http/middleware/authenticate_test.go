package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dsemenov/linkmark/internal/api/http/httpctx"
	"github.com/dsemenov/linkmark/internal/mocks"
	"github.com/dsemenov/linkmark/internal/model"
	"github.com/dsemenov/linkmark/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		parsedUserID int64
		parseErr     error
		storedUser   model.User
		storeErr     error
		wantStatus   int
		wantNext     bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:       "not a bearer header",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid",
			parseErr:   assert.AnError,
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:         "user no longer exists",
			authHeader:   "Bearer token",
			parsedUserID: 1,
			storeErr:     model.ErrNotFound,
			wantStatus:   http.StatusUnauthorized,
			wantNext:     false,
		},
		{
			name:         "valid token",
			authHeader:   "Bearer token",
			parsedUserID: 1,
			storedUser:   model.User{ID: 1, Email: "a@b.com"},
			wantStatus:   http.StatusOK,
			wantNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg := testutil.MakeNoopLogger()
			ctxMgr := httpctx.NewManager()

			tokens := mocks.NewTokenManager(t)
			if tt.parsedUserID != 0 || tt.parseErr != nil {
				tokens.On("ParseAccessToken", mock.AnythingOfType("string")).Return(tt.parsedUserID, tt.parseErr)
			}

			users := mocks.NewUserStore(t)
			if tt.parseErr == nil && tt.parsedUserID != 0 {
				users.On("GetByID", mock.Anything, tt.parsedUserID).Return(tt.storedUser, tt.storeErr)
			}

			m := NewAuthenticate(tokens, users, ctxMgr, lg)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				user, ok := ctxMgr.GetUserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, tt.storedUser, user)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
