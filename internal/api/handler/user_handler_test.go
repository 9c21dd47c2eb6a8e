package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/teamatlas/people-directory/internal/core/domain"
)

type stubDirectoryService struct {
	listFn       func(ctx context.Context, q domain.Query) ([]*domain.User, error)
	getFn        func(ctx context.Context, id string) (*domain.User, error)
	updateRoleFn func(ctx context.Context, id, role string) (*domain.User, error)
	updateFn     func(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
}

func (s *stubDirectoryService) List(ctx context.Context, q domain.Query) ([]*domain.User, error) {
	return s.listFn(ctx, q)
}

func (s *stubDirectoryService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubDirectoryService) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	return s.updateRoleFn(ctx, id, role)
}

func (s *stubDirectoryService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func TestUserHandler_List_PassesCriteria(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		listFn: func(_ context.Context, q domain.Query) ([]*domain.User, error) {
			if q.Department != "Eng" || q.Building != "1" || q.Name != "ada" {
				t.Fatalf("unexpected query: %+v", q)
			}
			return []*domain.User{domain.NewUser("u1", "a@example.com", "d", "Ada", "Lovelace")}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users?department=Eng&building=1&name=ada", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 1 || users[0]["_id"] != "u1" {
		t.Fatalf("unexpected payload: %v", users)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		getFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Get_NeverLeaksDigest(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		getFn: func(context.Context, string) (*domain.User, error) {
			return domain.NewUser("u1", "a@example.com", "super-secret-digest", "Ada", "Lovelace"), nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/u1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "super-secret-digest") {
		t.Fatalf("password digest leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_UpdateRole_Invalid(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		updateRoleFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidRole
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/users/u1/role", strings.NewReader(`{"role":"superuser"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	_ = handler.UpdateRole(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid role") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_UpdateRole_Success(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		updateRoleFn: func(_ context.Context, id, role string) (*domain.User, error) {
			if id != "u1" || role != "hr" {
				t.Fatalf("unexpected args: %s %s", id, role)
			}
			u := domain.NewUser("u1", "a@example.com", "d", "Ada", "Lovelace")
			u.Role = role
			return u, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/users/u1/role", strings.NewReader(`{"role":"hr"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.UpdateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Role updated") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Update_RejectsUnknownKeys(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		updateFn: func(context.Context, string, domain.UserPatch) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/users/u1", strings.NewReader(`{"no_such_field":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	_ = handler.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		updateFn: func(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
			if id != "u1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if patch.Phone == nil || *patch.Phone != "+1 555 0100" {
				t.Fatalf("phone not decoded: %+v", patch)
			}
			if patch.Manager == nil || *patch.Manager.FirstName != "Grace" {
				t.Fatalf("manager patch not decoded: %+v", patch.Manager)
			}
			if patch.Email != nil {
				t.Fatalf("absent fields must decode to nil")
			}
			return domain.NewUser("u1", "a@example.com", "d", "Ada", "Lovelace"), nil
		},
	}
	handler := NewUserHandler(stub)

	body := `{"phone":"+1 555 0100","manager":{"first_name":"Grace","last_name":"Hopper"}}`
	req := httptest.NewRequest(http.MethodPatch, "/users/u1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User updated") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Update_NullDecodesAsAbsent(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		updateFn: func(_ context.Context, _ string, patch domain.UserPatch) (*domain.User, error) {
			if patch.Phone != nil {
				t.Fatalf("null must decode to a nil pointer, got %+v", patch.Phone)
			}
			if patch.Telegram == nil || *patch.Telegram != "" {
				t.Fatalf("explicit empty value must survive decoding, got %+v", patch.Telegram)
			}
			return domain.NewUser("u1", "a@example.com", "d", "Ada", "Lovelace"), nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/users/u1", strings.NewReader(`{"phone":null,"telegram":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubDirectoryService{
		updateFn: func(context.Context, string, domain.UserPatch) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/users/ghost", strings.NewReader(`{"phone":"1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
