package controllers

import (
	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// ProjectRequest represents the admin create/update payload for a project
type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	DemoURL     string   `json:"demo_url"`
	RepoURL     string   `json:"repo_url"`
	TechStack   []string `json:"tech_stack"`
	Featured    bool     `json:"featured"`
}

// GET /v1/projects
func ListProjects(c *gin.Context) {
	utils.LogInfo("ListProjects called")

	var projects []models.Project
	if err := config.DB.Order("featured DESC, created_at DESC").Find(&projects).Error; err != nil {
		utils.LogError("Failed to fetch projects: %v", err)
		utils.InternalServerError(c, "Failed to fetch projects", err.Error())
		return
	}

	utils.Success(c, "Projects retrieved successfully", gin.H{"projects": projects})
}

// POST /v1/admin/projects
func CreateProject(c *gin.Context) {
	utils.LogInfo("CreateProject called")

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid project request: %v", err)
		utils.BadRequest(c, "Invalid project details", err.Error())
		return
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DemoURL:     req.DemoURL,
		RepoURL:     req.RepoURL,
		TechStack:   req.TechStack,
		Featured:    req.Featured,
	}
	if err := config.DB.Create(&project).Error; err != nil {
		utils.LogError("Failed to create project: %v", err)
		utils.InternalServerError(c, "Failed to create project", err.Error())
		return
	}

	utils.Created(c, "Project created successfully", gin.H{"project": project})
}

// PUT /v1/admin/projects/:id
func UpdateProject(c *gin.Context) {
	utils.LogInfo("UpdateProject called")

	var project models.Project
	if err := config.DB.First(&project, c.Param("id")).Error; err != nil {
		utils.LogError("Project not found for update: %s", c.Param("id"))
		utils.NotFound(c, "Project not found")
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid project update request: %v", err)
		utils.BadRequest(c, "Invalid project details", err.Error())
		return
	}

	project.Title = req.Title
	project.Description = req.Description
	project.ImageURL = req.ImageURL
	project.DemoURL = req.DemoURL
	project.RepoURL = req.RepoURL
	project.TechStack = req.TechStack
	project.Featured = req.Featured

	if err := config.DB.Save(&project).Error; err != nil {
		utils.LogError("Failed to update project %d: %v", project.ID, err)
		utils.InternalServerError(c, "Failed to update project", err.Error())
		return
	}

	utils.Success(c, "Project updated successfully", gin.H{"project": project})
}

// DELETE /v1/admin/projects/:id
func DeleteProject(c *gin.Context) {
	utils.LogInfo("DeleteProject called")

	result := config.DB.Delete(&models.Project{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Failed to delete project: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete project", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Project not found")
		return
	}

	utils.Success(c, "Project deleted successfully", nil)
}
