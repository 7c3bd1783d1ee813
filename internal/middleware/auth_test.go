package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return signed
}

func brandAuthRouter() (*gin.Engine, *Actor) {
	gin.SetMode(gin.TestMode)
	var captured Actor
	r := gin.New()
	r.GET("/guarded", BrandAuth(testSecret), func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no actor"})
			return
		}
		captured = actor
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, &captured
}

func TestBrandAuthAcceptsValidToken(t *testing.T) {
	userID := primitive.NewObjectID()
	brandID := primitive.NewObjectID()
	token := signToken(t, jwt.MapClaims{
		"sub":     userID.Hex(),
		"brandId": brandID.Hex(),
		"role":    "brand_admin",
		"exp":     time.Now().Add(time.Minute).Unix(),
	})

	r, captured := brandAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if captured.UserID != userID || captured.BrandID != brandID || captured.Role != "brand_admin" {
		t.Fatalf("unexpected actor: %+v", *captured)
	}
}

func TestBrandAuthRejectsWrongRole(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":     primitive.NewObjectID().Hex(),
		"brandId": primitive.NewObjectID().Hex(),
		"role":    "customer",
		"exp":     time.Now().Add(time.Minute).Unix(),
	})

	r, _ := brandAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestBrandAuthRejectsMissingBrandClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  primitive.NewObjectID().Hex(),
		"role": "brand_admin",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})

	r, _ := brandAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestBrandAuthRejectsMissingAndMalformedHeader(t *testing.T) {
	r, _ := brandAuthRouter()

	for _, header := range []string{"", "Token abc", "Bearer not-a-jwt"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/guarded", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestBrandAuthRejectsExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":     primitive.NewObjectID().Hex(),
		"brandId": primitive.NewObjectID().Hex(),
		"role":    "brand_admin",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})

	r, _ := brandAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
