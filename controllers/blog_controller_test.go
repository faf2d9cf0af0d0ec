package controllers

import (
	"net/http"
	"testing"

	"github.com/aditya-714/DevPorto/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBlogRouter() *gin.Engine {
	router := gin.New()
	router.GET("/v1/blogs", ListBlogs)
	router.GET("/v1/blogs/:slug", GetBlogBySlug)
	router.POST("/v1/admin/blogs", CreateBlog)
	router.PUT("/v1/admin/blogs/:id", UpdateBlog)
	router.DELETE("/v1/admin/blogs/:id", DeleteBlog)
	return router
}

func createTestBlog(t *testing.T, db *gorm.DB, slug string, published bool) *models.Blog {
	t.Helper()

	blog := models.Blog{
		Title:     "Post " + slug,
		Slug:      slug,
		Content:   "content",
		Tags:      []string{"go", "web"},
		Published: published,
	}
	require.NoError(t, db.Create(&blog).Error)
	return &blog
}

func TestListBlogsShowsPublishedOnly(t *testing.T) {
	db := setupTestDB(t)
	createTestBlog(t, db, "published-post", true)
	createTestBlog(t, db, "draft-post", false)

	w := performRequest(newBlogRouter(), http.MethodGet, "/v1/blogs", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	blogs := resp["data"].(map[string]interface{})["blogs"].([]interface{})
	require.Len(t, blogs, 1)
	assert.Equal(t, "published-post", blogs[0].(map[string]interface{})["slug"])
}

func TestGetBlogBySlug(t *testing.T) {
	db := setupTestDB(t)
	createTestBlog(t, db, "my-first-post", true)

	w := performRequest(newBlogRouter(), http.MethodGet, "/v1/blogs/my-first-post", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	blog := resp["data"].(map[string]interface{})["blog"].(map[string]interface{})
	assert.Equal(t, "Post my-first-post", blog["title"])
}

func TestGetBlogBySlugHidesDrafts(t *testing.T) {
	db := setupTestDB(t)
	createTestBlog(t, db, "draft-post", false)

	w := performRequest(newBlogRouter(), http.MethodGet, "/v1/blogs/draft-post", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBlog(t *testing.T) {
	db := setupTestDB(t)

	w := performRequest(newBlogRouter(), http.MethodPost, "/v1/admin/blogs", gin.H{
		"title":   "Hello World",
		"slug":    "hello-world",
		"content": "First post",
		"tags":    []string{"go"},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var blog models.Blog
	require.NoError(t, db.Where("slug = ?", "hello-world").First(&blog).Error)
	assert.True(t, blog.Published)
	assert.Equal(t, []string{"go"}, []string(blog.Tags))
}

func TestCreateBlogRejectsDuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	createTestBlog(t, db, "hello-world", true)

	w := performRequest(newBlogRouter(), http.MethodPost, "/v1/admin/blogs", gin.H{
		"title":   "Another",
		"slug":    "hello-world",
		"content": "dup",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBlogRejectsBadSlug(t *testing.T) {
	setupTestDB(t)

	w := performRequest(newBlogRouter(), http.MethodPost, "/v1/admin/blogs", gin.H{
		"title":   "Bad",
		"slug":    "Not A Slug",
		"content": "x",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateBlogAndDelete(t *testing.T) {
	db := setupTestDB(t)
	blog := createTestBlog(t, db, "old-slug", true)

	published := false
	w := performRequest(newBlogRouter(), http.MethodPut, "/v1/admin/blogs/"+itoa(blog.ID), gin.H{
		"title":     "Updated",
		"slug":      "new-slug",
		"content":   "updated content",
		"published": published,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Blog
	require.NoError(t, db.First(&got, blog.ID).Error)
	assert.Equal(t, "new-slug", got.Slug)
	assert.False(t, got.Published)

	w = performRequest(newBlogRouter(), http.MethodDelete, "/v1/admin/blogs/"+itoa(blog.ID), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(newBlogRouter(), http.MethodDelete, "/v1/admin/blogs/"+itoa(blog.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
