package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"poseidon/internal/authz"
	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(mw...)
	r.GET("/test", func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok", "actor": actor.Username})
	})
	return r
}

func doRequest(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	return errObj["code"].(string)
}

func bearer(t *testing.T, user *models.User) map[string]string {
	t.Helper()
	token, _, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAuthMiddleware(t *testing.T) {
	alice := &models.User{Base: models.Base{ID: 3}, Username: "alice", Role: "USER"}

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantCode   string
	}{
		{"missing_header", nil, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong_scheme", map[string]string{"Authorization": "Basic abc"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"garbage_token", map[string]string{"Authorization": "Bearer not.a.jwt"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"valid", bearer(t, alice), http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(newRouter(AuthMiddleware()), tt.headers)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantCode != "" {
				if got := errorCode(t, rec); got != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, got)
				}
				return
			}
			if got := parseBody(t, rec)["actor"]; got != "alice" {
				t.Errorf("expected actor alice, got %v", got)
			}
		})
	}
}

func TestParseAccessToken(t *testing.T) {
	token, _, err := GenerateAccessToken(&models.User{Base: models.Base{ID: 9}, Username: "root", Role: authz.RoleAdmin})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("expected valid token: %v", err)
	}
	if claims.Username != "root" || claims.Role != authz.RoleAdmin || claims.UserID != 9 {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := ParseAccessToken(token + "x"); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestRequireRole(t *testing.T) {
	user := &models.User{Username: "bob", Role: "USER"}
	admin := &models.User{Username: "root", Role: authz.RoleAdmin}
	r := newRouter(AuthMiddleware(), RequireRole(authz.RoleAdmin))

	rec := doRequest(r, bearer(t, user))
	if rec.Code != http.StatusForbidden || errorCode(t, rec) != "FORBIDDEN" {
		t.Errorf("expected 403 FORBIDDEN, got %d %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(r, bearer(t, admin))
	if rec.Code != http.StatusOK {
		t.Errorf("expected admin to pass, got %d", rec.Code)
	}

	rec = doRequest(newRouter(RequireRole(authz.RoleAdmin)), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without actor, got %d", rec.Code)
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		KeepRecord(c, gin.H{"account": ""})
		_ = c.Error(apperrors.Validation([]apperrors.FieldError{{Field: "account", Message: "Account is mandatory"}}))
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, errors.New("pq: relation \"trade\" does not exist")))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom at 0xdeadbeef"))
	})

	t.Run("validation_keeps_record", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validation", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := parseBody(t, rec)
		details := body["error"].(map[string]interface{})["details"].([]interface{})
		if details[0].(map[string]interface{})["field"] != "account" {
			t.Errorf("expected account detail, got %v", details)
		}
		if _, ok := body["record"]; !ok {
			t.Error("expected the submitted record to be echoed back")
		}
	})

	for _, path := range []string{"/internal", "/plain"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", rec.Code)
			}
			msg := parseBody(t, rec)["error"].(map[string]interface{})["message"]
			if msg != apperrors.ErrInternalServer.Message {
				t.Errorf("internal detail leaked: %v", msg)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	r := newRouter(NewRateLimiter(0.001, 2).Handler())

	for i := 0; i < 2; i++ {
		if rec := doRequest(r, nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
	rec := doRequest(r, nil)
	if rec.Code != http.StatusTooManyRequests || errorCode(t, rec) != "RATE_LIMITED" {
		t.Errorf("expected 429 RATE_LIMITED, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestAPIKeyGuard(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{"open_when_unconfigured", "", "", http.StatusOK},
		{"valid_key", "secret", "secret", http.StatusOK},
		{"wrong_key", "secret", "nope", http.StatusUnauthorized},
		{"missing_key", "secret", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.sent != "" {
				headers["X-API-Key"] = tt.sent
			}
			rec := doRequest(newRouter(APIKeyGuard(tt.configured)), headers)
			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestRequestLogging(t *testing.T) {
	r := newRouter(RequestLogging(), Metrics())

	given := "0190b1e4-7c3a-7c00-8000-000000000001"
	rec := doRequest(r, map[string]string{requestIDHeader: given})
	if rec.Header().Get(requestIDHeader) != given {
		t.Errorf("expected request id %s to be kept, got %s", given, rec.Header().Get(requestIDHeader))
	}

	rec = doRequest(r, map[string]string{requestIDHeader: "bogus"})
	if got := rec.Header().Get(requestIDHeader); got == "" || got == "bogus" {
		t.Errorf("expected a generated request id, got %q", got)
	}
}
