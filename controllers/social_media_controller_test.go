package controllers

import (
	"net/http"
	"testing"

	"github.com/aditya-714/DevPorto/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSocialRouter() *gin.Engine {
	router := gin.New()
	router.GET("/v1/social-media", ListSocialLinks)
	router.POST("/v1/admin/social-media", CreateSocialLink)
	router.PUT("/v1/admin/social-media/:id", UpdateSocialLink)
	router.DELETE("/v1/admin/social-media/:id", DeleteSocialLink)
	return router
}

func TestSocialLinksOrderedByPosition(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.SocialLink{Platform: "github", URL: "https://github.com/x", Order: 2}).Error)
	require.NoError(t, db.Create(&models.SocialLink{Platform: "linkedin", URL: "https://linkedin.com/in/x", Order: 1}).Error)

	w := performRequest(newSocialRouter(), http.MethodGet, "/v1/social-media", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	links := decodeResponse(t, w)["data"].(map[string]interface{})["social_links"].([]interface{})
	require.Len(t, links, 2)
	assert.Equal(t, "linkedin", links[0].(map[string]interface{})["platform"])
	assert.Equal(t, "github", links[1].(map[string]interface{})["platform"])
}

func TestCreateSocialLinkValidatesURL(t *testing.T) {
	setupTestDB(t)

	w := performRequest(newSocialRouter(), http.MethodPost, "/v1/admin/social-media", gin.H{
		"platform": "github",
		"url":      "not-a-url",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSocialLinkCRUD(t *testing.T) {
	db := setupTestDB(t)
	router := newSocialRouter()

	w := performRequest(router, http.MethodPost, "/v1/admin/social-media", gin.H{
		"platform": "github",
		"url":      "https://github.com/aditya-714",
		"order":    1,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var link models.SocialLink
	require.NoError(t, db.First(&link, "platform = ?", "github").Error)

	w = performRequest(router, http.MethodPut, "/v1/admin/social-media/"+itoa(link.ID), gin.H{
		"platform": "github",
		"url":      "https://github.com/aditya",
		"order":    3,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&link, link.ID).Error)
	assert.Equal(t, "https://github.com/aditya", link.URL)
	assert.Equal(t, 3, link.Order)

	w = performRequest(router, http.MethodDelete, "/v1/admin/social-media/"+itoa(link.ID), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodDelete, "/v1/admin/social-media/"+itoa(link.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
