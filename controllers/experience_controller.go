package controllers

import (
	"time"

	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// ExperienceRequest represents the admin create/update payload for a CV entry
type ExperienceRequest struct {
	Company     string     `json:"company" binding:"required"`
	Role        string     `json:"role" binding:"required"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}

// GET /v1/experiences
func ListExperiences(c *gin.Context) {
	utils.LogInfo("ListExperiences called")

	var experiences []models.Experience
	if err := config.DB.Order("start_date DESC").Find(&experiences).Error; err != nil {
		utils.LogError("Failed to fetch experiences: %v", err)
		utils.InternalServerError(c, "Failed to fetch experiences", err.Error())
		return
	}

	utils.Success(c, "Experiences retrieved successfully", gin.H{"experiences": experiences})
}

// POST /v1/admin/experiences
func CreateExperience(c *gin.Context) {
	utils.LogInfo("CreateExperience called")

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid experience request: %v", err)
		utils.BadRequest(c, "Invalid experience details", err.Error())
		return
	}

	experience := models.Experience{
		Company:     req.Company,
		Role:        req.Role,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	if err := config.DB.Create(&experience).Error; err != nil {
		utils.LogError("Failed to create experience: %v", err)
		utils.InternalServerError(c, "Failed to create experience", err.Error())
		return
	}

	utils.Created(c, "Experience created successfully", gin.H{"experience": experience})
}

// PUT /v1/admin/experiences/:id
func UpdateExperience(c *gin.Context) {
	utils.LogInfo("UpdateExperience called")

	var experience models.Experience
	if err := config.DB.First(&experience, c.Param("id")).Error; err != nil {
		utils.LogError("Experience not found for update: %s", c.Param("id"))
		utils.NotFound(c, "Experience not found")
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid experience update request: %v", err)
		utils.BadRequest(c, "Invalid experience details", err.Error())
		return
	}

	experience.Company = req.Company
	experience.Role = req.Role
	experience.Location = req.Location
	experience.StartDate = req.StartDate
	experience.EndDate = req.EndDate
	experience.Description = req.Description

	if err := config.DB.Save(&experience).Error; err != nil {
		utils.LogError("Failed to update experience %d: %v", experience.ID, err)
		utils.InternalServerError(c, "Failed to update experience", err.Error())
		return
	}

	utils.Success(c, "Experience updated successfully", gin.H{"experience": experience})
}

// DELETE /v1/admin/experiences/:id
func DeleteExperience(c *gin.Context) {
	utils.LogInfo("DeleteExperience called")

	result := config.DB.Delete(&models.Experience{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Failed to delete experience: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete experience", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Experience not found")
		return
	}

	utils.Success(c, "Experience deleted successfully", nil)
}
