package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RigelNana/arksignup/frontend/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.Out = io.Discard

	r, err := Setup(
		handler.NewPageHandler(logger),
		handler.NewSubmitHandler(handler.NewBackendClient("http://127.0.0.1:0/submit", time.Second), logger),
		logger,
	)
	require.NoError(t, err)

	for _, path := range []string{"/", "/about", "/api/kjo", "/url?name=kjo&age=3", "/docs", "/openapi.json"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	assert.Contains(t, w.Body.String(), `"/submit"`)
}
