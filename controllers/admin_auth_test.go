package controllers

import (
	"net/http"
	"testing"

	"github.com/aditya-714/DevPorto/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAdminAuthRouter() *gin.Engine {
	router := gin.New()
	router.POST("/v1/admin/login", AdminLogin)
	router.POST("/v1/admin/logout", AdminLogout)
	return router
}

func createTestAdmin(t *testing.T, db *gorm.DB, email, password string, active bool) *models.Admin {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.Admin{
		Email:    email,
		Password: string(hashed),
		IsActive: active,
	}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func TestAdminLogin(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	createTestAdmin(t, db, "admin@example.com", "s3cret", true)

	w := performRequest(newAdminAuthRouter(), http.MethodPost, "/v1/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "s3cret",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	createTestAdmin(t, db, "admin@example.com", "s3cret", true)

	w := performRequest(newAdminAuthRouter(), http.MethodPost, "/v1/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	setupTestDB(t)

	w := performRequest(newAdminAuthRouter(), http.MethodPost, "/v1/admin/login", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginInactiveAccount(t *testing.T) {
	db := setupTestDB(t)
	createTestAdmin(t, db, "admin@example.com", "s3cret", false)

	w := performRequest(newAdminAuthRouter(), http.MethodPost, "/v1/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "s3cret",
	}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateSampleAdmin(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "bootstrap-pass")

	require.NoError(t, CreateSampleAdmin())

	var admin models.Admin
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.True(t, admin.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("bootstrap-pass")))

	// Second run is a no-op
	require.NoError(t, CreateSampleAdmin())
	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateSampleAdminSkipsWhenUnconfigured(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	require.NoError(t, CreateSampleAdmin())

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
