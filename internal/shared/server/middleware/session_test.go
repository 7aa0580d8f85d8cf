package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sessionId": SessionIDFromContext(c)})
	})
	return router
}

func TestSessionHeaderIsAdopted(t *testing.T) {
	router := sessionRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Session-Id", "sess-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Session-Id"); got != "sess-123" {
		t.Fatalf("expected echoed session id, got %q", got)
	}
	if !strings.Contains(resp.Body.String(), "sess-123") {
		t.Fatalf("handler did not see the session id: %s", resp.Body.String())
	}
}

func TestSessionMissingHeaderMintsID(t *testing.T) {
	router := sessionRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	minted := resp.Header().Get("X-Session-Id")
	if minted == "" {
		t.Fatal("expected a minted session id in the response header")
	}
	if !strings.Contains(resp.Body.String(), minted) {
		t.Fatalf("minted id not visible to the handler: %s", resp.Body.String())
	}
}

func TestSessionPreflightStopsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	reached := false
	router.OPTIONS("/whoami", func(c *gin.Context) {
		reached = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if reached {
		t.Fatal("preflight request reached the route handler")
	}
}

func TestSessionRejectsMalformedID(t *testing.T) {
	router := sessionRouter()

	for _, bad := range []string{"has space", "semi;colon", strings.Repeat("x", 200)} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Session-Id", bad)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", bad, resp.Code)
		}
	}
}
