package main

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestLoggerIncludesAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	router := gin.New()
	router.Use(requestLogger())
	router.GET("/boom", func(c *gin.Context) {
		c.Set("user_email", "alex@example.com")
		c.JSON(http.StatusInternalServerError, gin.H{"status": false})
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "user=alex@example.com") {
		t.Errorf("log output missing authenticated user: %q", buf.String())
	}
}

func TestRequestLoggerSkipsHealthChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	router := gin.New()
	router.Use(requestLogger())
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	if buf.Len() != 0 {
		t.Errorf("health check request was logged: %q", buf.String())
	}
}
