package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB points the global DB handle at a fresh in-memory database. Each
// test gets its own named database so state never leaks between tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	previous := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = previous })

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, price int, active bool) *models.Product {
	t.Helper()

	product := models.Product{
		Title:        "Go Course",
		Description:  "A complete course",
		Price:        price,
		FileURL:      "https://cdn.example.com/go-course.zip",
		ThumbnailURL: "https://cdn.example.com/go-course.png",
		IsActive:     active,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func createTestTransaction(t *testing.T, db *gorm.DB, product *models.Product, status string) *models.Transaction {
	t.Helper()

	transaction := models.Transaction{
		ProductID:   product.ID,
		BuyerEmail:  "buyer@example.com",
		BuyerName:   "Budi",
		Price:       product.Price,
		Status:      status,
		OYInvoiceID: "pl-" + product.ID[:8],
	}
	require.NoError(t, db.Create(&transaction).Error)
	return &transaction
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func performRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// fakeEmailServer stands in for the Resend API and counts deliveries per
// recipient.
type fakeEmailServer struct {
	*httptest.Server
	sent map[string]int
}

func newFakeEmailServer(t *testing.T) *fakeEmailServer {
	t.Helper()

	f := &fakeEmailServer{sent: map[string]int{}}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		f.sent[payload["to"]]++
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	t.Cleanup(f.Server.Close)

	t.Setenv("EMAIL_PROVIDER", "resend")
	t.Setenv("RESEND_BASE_URL", f.URL)
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("EMAIL_FROM", "store@example.com")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")

	return f
}
