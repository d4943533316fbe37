package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trungle-dev/docqa-be/handler"
	"github.com/trungle-dev/docqa-be/service"
)

func newDocumentRouter(t *testing.T) (*gin.Engine, *service.DocumentStore) {
	t.Helper()

	store, err := service.NewDocumentStore(t.TempDir(), service.NewExtractService())
	require.NoError(t, err)

	h := handler.NewDocumentHandler(store)
	router := gin.New()
	router.GET("/documents", h.HandleList)
	router.GET("/documents/raw", h.ServeDocument)
	return router, store
}

func TestHandleList(t *testing.T) {
	t.Parallel()

	router, store := newDocumentRouter(t)
	_, err := store.Put("a.txt", []byte("a"))
	require.NoError(t, err)
	_, err = store.Put("b.txt", []byte("b"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"documents": ["a.txt", "b.txt"]}`, rec.Body.String())
}

func TestServeDocument(t *testing.T) {
	t.Parallel()

	router, store := newDocumentRouter(t)
	_, err := store.Put("notes.txt", []byte("raw bytes"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/documents/raw?file=notes.txt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "raw bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "notes.txt")
}

func TestServeDocument_MissingParam(t *testing.T) {
	t.Parallel()

	router, _ := newDocumentRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/documents/raw", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeDocument_Unknown(t *testing.T) {
	t.Parallel()

	router, _ := newDocumentRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/documents/raw?file=missing.txt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.GET("/", handler.NewHealthHandler().HandleHealth)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running!", rec.Body.String())
}
