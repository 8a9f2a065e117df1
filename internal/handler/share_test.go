package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func revokeContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/remove-share/1", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "fileId", Value: "1"}}
	c.Set("user_id", uint64(1))
	c.Set("username", "alice")
	return c, w
}

func TestRevokeShareRejectsMalformedBody(t *testing.T) {
	c, w := revokeContext(t, `{"target_user_id": `)
	RevokeShare(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expect 400 for malformed body, got %d", w.Code)
	}
}

func TestRevokeShareRejectsWrongTargetType(t *testing.T) {
	c, w := revokeContext(t, `{"target_user_id": "two"}`)
	RevokeShare(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expect 400 for wrong target type, got %d", w.Code)
	}
}

func TestRevokeShareRejectsBadFileID(t *testing.T) {
	c, w := revokeContext(t, "")
	c.Params = gin.Params{{Key: "fileId", Value: "not-a-number"}}
	RevokeShare(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expect 400 for bad file id, got %d", w.Code)
	}
}
