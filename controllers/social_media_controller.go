package controllers

import (
	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// SocialLinkRequest represents the admin create/update payload
type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}

// GET /v1/social-media
func ListSocialLinks(c *gin.Context) {
	utils.LogInfo("ListSocialLinks called")

	var links []models.SocialLink
	if err := config.DB.Order(`"order" ASC, created_at ASC`).Find(&links).Error; err != nil {
		utils.LogError("Failed to fetch social links: %v", err)
		utils.InternalServerError(c, "Failed to fetch social links", err.Error())
		return
	}

	utils.Success(c, "Social links retrieved successfully", gin.H{"social_links": links})
}

// POST /v1/admin/social-media
func CreateSocialLink(c *gin.Context) {
	utils.LogInfo("CreateSocialLink called")

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid social link request: %v", err)
		utils.BadRequest(c, "Invalid social link details", err.Error())
		return
	}
	if valid, msg := utils.ValidateURL(req.URL); !valid {
		utils.ValidationError(c, msg, nil)
		return
	}

	link := models.SocialLink{
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
		Order:    req.Order,
	}
	if err := config.DB.Create(&link).Error; err != nil {
		utils.LogError("Failed to create social link: %v", err)
		utils.InternalServerError(c, "Failed to create social link", err.Error())
		return
	}

	utils.Created(c, "Social link created successfully", gin.H{"social_link": link})
}

// PUT /v1/admin/social-media/:id
func UpdateSocialLink(c *gin.Context) {
	utils.LogInfo("UpdateSocialLink called")

	var link models.SocialLink
	if err := config.DB.First(&link, c.Param("id")).Error; err != nil {
		utils.LogError("Social link not found for update: %s", c.Param("id"))
		utils.NotFound(c, "Social link not found")
		return
	}

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid social link update request: %v", err)
		utils.BadRequest(c, "Invalid social link details", err.Error())
		return
	}
	if valid, msg := utils.ValidateURL(req.URL); !valid {
		utils.ValidationError(c, msg, nil)
		return
	}

	link.Platform = req.Platform
	link.URL = req.URL
	link.Icon = req.Icon
	link.Order = req.Order

	if err := config.DB.Save(&link).Error; err != nil {
		utils.LogError("Failed to update social link %d: %v", link.ID, err)
		utils.InternalServerError(c, "Failed to update social link", err.Error())
		return
	}

	utils.Success(c, "Social link updated successfully", gin.H{"social_link": link})
}

// DELETE /v1/admin/social-media/:id
func DeleteSocialLink(c *gin.Context) {
	utils.LogInfo("DeleteSocialLink called")

	result := config.DB.Delete(&models.SocialLink{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Failed to delete social link: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete social link", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Social link not found")
		return
	}

	utils.Success(c, "Social link deleted successfully", nil)
}
