package middleware

import (
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func tokenFor(t *testing.T, role model.UserRole) string {
	t.Helper()
	user := &model.User{Email: "u@example.com", Role: role}
	user.ID = 7
	token, err := util.GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func newTestRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{"missing token", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", "", http.StatusUnauthorized},
		{"valid bearer header", "Bearer " + tokenFor(t, model.Student), "", http.StatusOK},
		{"valid query token", "", tokenFor(t, model.Student), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/ping"
			if tt.query != "" {
				url += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name       string
		required   model.UserRole
		tokenRole  model.UserRole
		wantStatus int
	}{
		{"matching role", model.Instructor, model.Instructor, http.StatusOK},
		{"wrong role", model.Instructor, model.Student, http.StatusForbidden},
		{"admin passes any gate", model.Sponsor, model.Admin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(cfg, tt.required)
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tt.tokenRole))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

type recordingActivityRepo struct {
	seen chan uint
}

func (r *recordingActivityRepo) UpdateLastSeen(userID uint) error {
	r.seen <- userID
	return nil
}

func TestActivityMiddleware(t *testing.T) {
	cfg := testConfig()
	repo := &recordingActivityRepo{seen: make(chan uint, 1)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", AuthMiddleware(cfg), ActivityMiddleware(repo), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, model.Student))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	select {
	case userID := <-repo.seen:
		assert.Equal(t, uint(7), userID)
	case <-time.After(time.Second):
		t.Fatal("UpdateLastSeen was not called")
	}
}
