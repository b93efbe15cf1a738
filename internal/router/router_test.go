package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/validators"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	SetupRoutes(e, db, t.TempDir())
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target, token, body string) (int, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("%s %s: decode response %q: %v", method, target, rec.Body.String(), err)
	}
	return rec.Code, payload
}

func register(t *testing.T, e *echo.Echo, username string) (token string, id uint) {
	t.Helper()
	body := fmt.Sprintf(`{"username": %q, "email": "%s@example.com", "password": "secret123"}`, username, username)
	code, payload := doJSON(t, e, http.MethodPost, "/api/v1/auth/register", "", body)
	if code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%v)", username, code, payload)
	}
	token = payload["token"].(string)
	id = uint(payload["user"].(map[string]interface{})["id"].(float64))
	return token, id
}

// Viewer-specific fields on public routes must reflect the token the
// request carries, even though the routes themselves need no auth.
func TestPublicRoutesSeeViewerClaims(t *testing.T) {
	e := newTestServer(t)

	aliceToken, _ := register(t, e, "alice")
	_, bobID := register(t, e, "bob")

	code, _ := doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", bobID), aliceToken, "")
	if code != http.StatusOK {
		t.Fatalf("follow: expected 200, got %d", code)
	}

	t.Run("profile follow state with token", func(t *testing.T) {
		code, payload := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", bobID), aliceToken, "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		data := payload["data"].(map[string]interface{})
		if data["is_following"] != true {
			t.Errorf("is_following = %v for an authenticated follower, want true", data["is_following"])
		}
		if data["follows_you"] != false {
			t.Errorf("follows_you = %v, want false (bob does not follow alice)", data["follows_you"])
		}
	})

	t.Run("profile follow state without token", func(t *testing.T) {
		code, payload := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", bobID), "", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		data := payload["data"].(map[string]interface{})
		if data["is_following"] != false {
			t.Errorf("is_following = %v for an anonymous viewer, want false", data["is_following"])
		}
	})

	t.Run("recipe favorite state with token", func(t *testing.T) {
		recipeBody := `{"title": "Fried Rice", "ingredients": "rice, eggs", "instructions": "fry", "cooking_time": 10, "difficulty": "easy", "servings": 2}`
		code, payload := doJSON(t, e, http.MethodPost, "/api/v1/recipes", aliceToken, recipeBody)
		if code != http.StatusCreated {
			t.Fatalf("create recipe: expected 201, got %d (%v)", code, payload)
		}
		recipeID := uint(payload["recipe"].(map[string]interface{})["id"].(float64))

		code, _ = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%d/favorite", recipeID), aliceToken, "")
		if code != http.StatusOK {
			t.Fatalf("favorite: expected 200, got %d", code)
		}

		code, payload = doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%d", recipeID), aliceToken, "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		data := payload["data"].(map[string]interface{})
		if data["is_favorited"] != true {
			t.Errorf("is_favorited = %v after favoriting, want true", data["is_favorited"])
		}
	})

	t.Run("garbage token browses anonymously", func(t *testing.T) {
		code, payload := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", bobID), "not-a-jwt", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		data := payload["data"].(map[string]interface{})
		if data["is_following"] != false {
			t.Errorf("is_following = %v with an invalid token, want false", data["is_following"])
		}
	})
}

// Protected routes still refuse requests without a valid token.
func TestProtectedRoutesRequireAuth(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with an invalid token, got %d", rec.Code)
	}
}
