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

type stubAuthService struct {
	signUpFn func(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)
	signInFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	return s.signUpFn(ctx, firstName, lastName, email, password)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.signInFn(ctx, email, password)
}

func newAuthContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(_ context.Context, firstName, lastName, email, password string) (*domain.User, error) {
			if firstName != "Ada" || lastName != "Lovelace" || email != "ada@example.com" {
				t.Fatalf("unexpected args: %s %s %s", firstName, lastName, email)
			}
			return domain.NewUser("u1", email, "digest", firstName, lastName), nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/sign-up", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"pw"}`)
	if err := handler.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User created" || resp["user"] != "ada@example.com" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestAuthHandler_SignUp_MissingField(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(context.Context, string, string, string, string) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/sign-up", `{"firstName":"Ada","email":"ada@example.com","password":"pw"}`)
	_ = handler.SignUp(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "All fields are required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_SignUp_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(context.Context, string, string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/sign-up", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"pw"}`)
	_ = handler.SignUp(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			u := domain.NewUser("u1", email, "digest", "Ada", "Lovelace")
			return "token123", u, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/sign-in", `{"email":"ada@example.com","password":"pw"}`)
	if err := handler.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Authenticated" || resp["token"] != "token123" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "u1" || user["role"] != "employee" {
		t.Fatalf("unexpected user payload: %v", resp["user"])
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("digest must never be serialized")
	}
}

func TestAuthHandler_SignIn_UniformInvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	// Same service error regardless of cause; assert the single wire shape.
	c, rec := newAuthContext(t, "/sign-in", `{"email":"ghost@example.com","password":"pw"}`)
	_ = handler.SignIn(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Invalid credentials" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestAuthHandler_SignIn_Throttled(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/sign-in", `{"email":"ada@example.com","password":"pw"}`)
	_ = handler.SignIn(c)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_SignIn_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatalf("service must not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/sign-in", "{")
	_ = handler.SignIn(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
