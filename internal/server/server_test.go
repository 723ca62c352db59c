package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lus-labeler-backend/internal/drive"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A nil store is fine here: registering routes and serving /health
	// never touches Drive or the database.
	catalog := drive.NewCatalog(nil, "", zap.NewNop())
	srv := New(nil, catalog, zap.NewNop())

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
