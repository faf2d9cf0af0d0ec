package controllers

import (
	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// ProfileRequest represents the admin payload for the public profile
type ProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	Headline  string `json:"headline"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	CVUrl     string `json:"cv_url"`
	Email     string `json:"email"`
	Location  string `json:"location"`
}

// GET /v1/profile
//
// The profile is a singleton: the first row wins.
func GetProfile(c *gin.Context) {
	utils.LogInfo("GetProfile called")

	var profile models.Profile
	if err := config.DB.First(&profile).Error; err != nil {
		utils.LogError("Profile not found: %v", err)
		utils.NotFound(c, "Profile not found")
		return
	}

	utils.Success(c, "Profile retrieved successfully", gin.H{"profile": profile})
}

// PUT /v1/admin/profile
//
// Creates the profile on first save, updates it afterwards.
func UpdateProfile(c *gin.Context) {
	utils.LogInfo("UpdateProfile called")

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid profile request: %v", err)
		utils.BadRequest(c, "Invalid profile details", err.Error())
		return
	}
	if req.Email != "" {
		if valid, msg := utils.ValidateEmail(req.Email); !valid {
			utils.ValidationError(c, msg, nil)
			return
		}
	}

	var profile models.Profile
	err := config.DB.First(&profile).Error

	profile.Name = req.Name
	profile.Headline = req.Headline
	profile.Bio = req.Bio
	profile.AvatarURL = req.AvatarURL
	profile.CVUrl = req.CVUrl
	profile.Email = req.Email
	profile.Location = req.Location

	if err != nil {
		if err := config.DB.Create(&profile).Error; err != nil {
			utils.LogError("Failed to create profile: %v", err)
			utils.InternalServerError(c, "Failed to save profile", err.Error())
			return
		}
		utils.Created(c, "Profile created successfully", gin.H{"profile": profile})
		return
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		utils.LogError("Failed to update profile: %v", err)
		utils.InternalServerError(c, "Failed to save profile", err.Error())
		return
	}

	utils.Success(c, "Profile updated successfully", gin.H{"profile": profile})
}
