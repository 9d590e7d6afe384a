package handlers

import (
	"net/http"
	"testing"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
)

func setupUserRouter(svc *mockUserService, audit *mockAuditService) *testRouter {
	r := newEngine()
	NewUserHandler(svc, audit).Register(r.Group("/users", injectActor("root", "ADMIN")))
	return &testRouter{r}
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("hides the password", func(t *testing.T) {
		var raw string
		svc := &mockUserService{
			createFn: func(u *models.User, pw string) (*models.User, error) {
				raw = pw
				u.ID, u.Version = 2, 1
				return u, nil
			},
		}
		audit := &mockAuditService{}
		r := setupUserRouter(svc, audit)

		rec := r.do("POST", "/users", `{"username":"bob","password":"Password1!","fullname":"Bob","role":"USER"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if raw != "Password1!" {
			t.Errorf("expected raw password to reach the service, got %q", raw)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if _, leaked := user["password"]; leaked {
			t.Error("password must not be rendered")
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "CREATE" {
			t.Errorf("expected CREATE audit entry, got %v", got)
		}
	})

	t.Run("validation failure does not echo the password", func(t *testing.T) {
		svc := &mockUserService{
			createFn: func(_ *models.User, _ string) (*models.User, error) {
				return nil, apperrors.Validation([]apperrors.FieldError{{Field: "password", Message: "too weak"}})
			},
		}
		r := setupUserRouter(svc, &mockAuditService{})

		rec := r.do("POST", "/users", `{"username":"bob","password":"weak","fullname":"Bob","role":"USER"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		record := parseJSON(t, rec)["record"].(map[string]interface{})
		if record["username"] != "bob" {
			t.Errorf("expected record echo, got %v", record)
		}
		if _, leaked := record["password"]; leaked {
			t.Error("password must not be echoed")
		}
	})

	t.Run("duplicate username returns 409", func(t *testing.T) {
		svc := &mockUserService{
			createFn: func(_ *models.User, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateUsername
			},
		}
		r := setupUserRouter(svc, &mockAuditService{})

		rec := r.do("POST", "/users", `{"username":"bob","password":"Password1!","fullname":"Bob","role":"USER"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_USERNAME")
	})
}

func TestUserHandler_GetUpdateDelete(t *testing.T) {
	svc := &mockUserService{
		findByIDFn: func(id int64) (*models.User, error) {
			if id != 2 {
				return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Invalid user Id: 3")
			}
			return &models.User{Base: models.Base{ID: 2, Version: 1}, Username: "bob", Role: "USER"}, nil
		},
		updateFn: func(_ int64, _ *models.User, _ string) (*models.User, error) {
			return nil, apperrors.ErrConcurrencyConflict
		},
		deleteFn: func(id int64) error {
			if id != 2 {
				return apperrors.WithMessage(apperrors.ErrNotFound, "Invalid user Id: 3")
			}
			return nil
		},
	}
	r := setupUserRouter(svc, &mockAuditService{})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"get", "GET", "/users/2", "", http.StatusOK},
		{"get_absent", "GET", "/users/3", "", http.StatusNotFound},
		{"update_conflict", "PUT", "/users/2", `{"version":0,"username":"bob","password":"Password1!","fullname":"Bob","role":"USER"}`, http.StatusConflict},
		{"update_missing_password", "PUT", "/users/2", `{"version":1,"username":"bob","fullname":"Bob","role":"USER"}`, http.StatusBadRequest},
		{"delete", "DELETE", "/users/2", "", http.StatusOK},
		{"delete_absent", "DELETE", "/users/3", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := r.do(tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}
