package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sahithi-Sritha/FSAD-Project/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listEntriesRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ec := NewEntryController(services.NewRealtimeHub())
	r.GET("/entries", func(c *gin.Context) { c.Set("userID", uint(1)) }, ec.ListEntries)
	return r
}

func TestListEntriesRejectsMalformedDateRange(t *testing.T) {
	r := listEntriesRouter()

	for _, url := range []string{
		"/entries?from=not-a-time&to=2026-01-02T00:00:00Z",
		"/entries?from=2026-01-01T00:00:00Z&to=yesterday",
		"/entries?from=2026-01-01T00:00:00Z", // to missing
		"/entries?to=2026-01-02T00:00:00Z",   // from missing
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, url, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestListEntriesRejectsInvertedDateRange(t *testing.T) {
	r := listEntriesRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/entries?from=2026-01-02T00:00:00Z&to=2026-01-01T00:00:00Z", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
