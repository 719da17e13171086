package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopcatalog/internal/db"
	"shopcatalog/internal/logger"
	"shopcatalog/internal/store"
	"shopcatalog/internal/uploads"
)

// testEnv is a full router over an in-memory sqlite database and a
// temporary upload dir.
type testEnv struct {
	router *gin.Engine
	stores *store.Stores
	dir    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// отдельная именованная in-memory база на каждый тест
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	dir := t.TempDir()
	files, err := uploads.NewDiskStore(dir)
	require.NoError(t, err)

	stores := store.New(gdb)
	h := New(stores, files, logger.Nop())

	r := gin.New()
	r.Use(sessions.Sessions("shop_session", cookie.NewStore([]byte("test_secret"))))
	h.Routes(r)

	return &testEnv{router: r, stores: stores, dir: dir}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doMultipart(t *testing.T, method, path string, fields map[string]string, fileField, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), "body: %s", w.Body.String())
}

// createCategory is a fixture helper returning the new category id.
func (e *testEnv) createCategory(t *testing.T, title string) uint {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/categories", gin.H{"title": title})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		ID uint `json:"id"`
	}
	decodeInto(t, w, &resp)
	return resp.ID
}

// createProduct creates a product in the given category.
func (e *testEnv) createProduct(t *testing.T, title string, categoryID uint, price string) uint {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/products", gin.H{
		"title":       title,
		"category_id": categoryID,
		"price":       price,
		"stock":       3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		ID uint `json:"id"`
	}
	decodeInto(t, w, &resp)
	return resp.ID
}
