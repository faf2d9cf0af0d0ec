package controllers

import (
	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// GET /v1/blogs
func ListBlogs(c *gin.Context) {
	utils.LogInfo("ListBlogs called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Blog{}).Where("published = ?", true)

	var total int64
	query.Count(&total)
	pagination.SetTotal(total)

	var blogs []models.Blog
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&blogs).Error; err != nil {
		utils.LogError("Failed to fetch blogs: %v", err)
		utils.InternalServerError(c, "Failed to fetch blogs", err.Error())
		return
	}

	utils.Success(c, "Blogs retrieved successfully", gin.H{
		"blogs":      blogs,
		"pagination": pagination.Meta(),
	})
}

// GET /v1/blogs/:slug
func GetBlogBySlug(c *gin.Context) {
	utils.LogInfo("GetBlogBySlug called")

	var blog models.Blog
	if err := config.DB.Where("slug = ? AND published = ?", c.Param("slug"), true).First(&blog).Error; err != nil {
		utils.LogError("Blog not found for slug: %s", c.Param("slug"))
		utils.NotFound(c, "Blog not found")
		return
	}

	utils.Success(c, "Blog retrieved successfully", gin.H{"blog": blog})
}
