package controllers

import (
	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// BlogRequest represents the admin create/update payload for a blog post
type BlogRequest struct {
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
}

// POST /v1/admin/blogs
func CreateBlog(c *gin.Context) {
	utils.LogInfo("CreateBlog called")

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid blog request: %v", err)
		utils.BadRequest(c, "Invalid blog details", err.Error())
		return
	}
	if valid, msg := utils.ValidateSlug(req.Slug); !valid {
		utils.ValidationError(c, msg, nil)
		return
	}

	var existing models.Blog
	if err := config.DB.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		utils.Conflict(c, "Slug already exists", nil)
		return
	}

	blog := models.Blog{
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Tags:       req.Tags,
		Published:  true,
	}
	if req.Published != nil {
		blog.Published = *req.Published
	}

	if err := config.DB.Create(&blog).Error; err != nil {
		utils.LogError("Failed to create blog: %v", err)
		utils.InternalServerError(c, "Failed to create blog", err.Error())
		return
	}

	utils.LogInfo("Created blog %d (%s)", blog.ID, blog.Slug)
	utils.Created(c, "Blog created successfully", gin.H{"blog": blog})
}

// PUT /v1/admin/blogs/:id
func UpdateBlog(c *gin.Context) {
	utils.LogInfo("UpdateBlog called")

	var blog models.Blog
	if err := config.DB.First(&blog, c.Param("id")).Error; err != nil {
		utils.LogError("Blog not found for update: %s", c.Param("id"))
		utils.NotFound(c, "Blog not found")
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid blog update request: %v", err)
		utils.BadRequest(c, "Invalid blog details", err.Error())
		return
	}
	if valid, msg := utils.ValidateSlug(req.Slug); !valid {
		utils.ValidationError(c, msg, nil)
		return
	}

	if req.Slug != blog.Slug {
		var existing models.Blog
		if err := config.DB.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
			utils.Conflict(c, "Slug already exists", nil)
			return
		}
	}

	blog.Title = req.Title
	blog.Slug = req.Slug
	blog.Content = req.Content
	blog.CoverImage = req.CoverImage
	blog.Tags = req.Tags
	if req.Published != nil {
		blog.Published = *req.Published
	}

	if err := config.DB.Save(&blog).Error; err != nil {
		utils.LogError("Failed to update blog %d: %v", blog.ID, err)
		utils.InternalServerError(c, "Failed to update blog", err.Error())
		return
	}

	utils.Success(c, "Blog updated successfully", gin.H{"blog": blog})
}

// DELETE /v1/admin/blogs/:id
func DeleteBlog(c *gin.Context) {
	utils.LogInfo("DeleteBlog called")

	result := config.DB.Delete(&models.Blog{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Failed to delete blog: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete blog", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Blog not found")
		return
	}

	utils.Success(c, "Blog deleted successfully", nil)
}
