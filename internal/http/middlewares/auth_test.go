package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, authorization string) (string, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var owner string
	err := Auth(testSecret)(func(c echo.Context) error {
		owner = OwnerID(c)
		return nil
	})(c)
	return owner, err
}

func TestAuth_ResolvesOwnerFromSubject(t *testing.T) {
	owner, err := runAuth(t, "Bearer "+signToken(t, testSecret, "owner-1"))
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if owner != "owner-1" {
		t.Errorf("expected owner-1, got %q", owner)
	}
}

func TestAuth_RejectsMissingHeader(t *testing.T) {
	if _, err := runAuth(t, ""); !isUnauthorized(err) {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestAuth_RejectsWrongSecret(t *testing.T) {
	if _, err := runAuth(t, "Bearer "+signToken(t, "other-secret", "owner-1")); !isUnauthorized(err) {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestAuth_RejectsMalformedToken(t *testing.T) {
	if _, err := runAuth(t, "Bearer not.a.jwt"); !isUnauthorized(err) {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestAuth_RejectsEmptySubject(t *testing.T) {
	if _, err := runAuth(t, "Bearer "+signToken(t, testSecret, "")); !isUnauthorized(err) {
		t.Errorf("expected 401, got %v", err)
	}
}

func isUnauthorized(err error) bool {
	var httpErr *echo.HTTPError
	return errors.As(err, &httpErr) && httpErr.Code == http.StatusUnauthorized
}
