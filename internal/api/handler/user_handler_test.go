package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/itam-platform/identity-service/internal/core/domain"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	updateFn func(ctx context.Context, id, name, email string) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) { return s.listFn(ctx) }

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error) {
	return s.updateFn(ctx, id, name, email)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }

func newUserContext(t *testing.T, method, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Name: "Alice", Role: domain.RoleSuperAdmin},
				{ID: "u2", Name: "Bob", Role: domain.RoleEmployee},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newUserContext(t, http.MethodGet, "", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if _, leaked := users[0]["password"]; leaked {
		t.Fatalf("password leaked in listing")
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newUserContext(t, http.MethodGet, "", "missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id, name, email string) (*domain.User, error) {
			if id != "u1" || name != "Robert" || email != "" {
				t.Fatalf("unexpected args: %s %s %s", id, name, email)
			}
			return &domain.User{ID: id, Name: name, Email: "bob@example.com"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newUserContext(t, http.MethodPut, `{"name":"Robert"}`, "u1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_BadEmail(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id, name, email string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newUserContext(t, http.MethodPut, `{"email":"not-an-email"}`, "u1")
	err := h.Update(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "u1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newUserContext(t, http.MethodDelete, "", "u1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
