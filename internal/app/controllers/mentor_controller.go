package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/app/services"
	"github.com/ozanc/mentorhub/internal/middleware"
)

// MentorController handles mentor-facing project review and student listing.
// The mentor's identity always comes from the token, never from the request.
type MentorController struct {
	projectService services.ProjectService
	studentService services.StudentService
}

// NewMentorController creates a new MentorController
func NewMentorController(projectService services.ProjectService, studentService services.StudentService) *MentorController {
	return &MentorController{
		projectService: projectService,
		studentService: studentService,
	}
}

// ListProjects retrieves the projects assigned to the calling mentor
// @Summary List assigned projects
// @Description Retrieves the projects assigned to the authenticated mentor
// @Tags mentor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MentorProjectResponse "Projects retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor/projects [get]
func (c *MentorController) ListProjects(ctx *gin.Context) {
	mentorID, ok := middleware.CallerID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	projects, err := c.projectService.ListProjectsForMentor(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// UpdateProjectStatus applies a review decision to a project
// @Summary Review a project
// @Description Updates a project's status, and optionally feedback and progress
// @Tags mentor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.UpdateStatusRequest true "Review decision"
// @Success 200 {object} dto.SuccessResponse "Project updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor/projects/{id}/status [put]
func (c *MentorController) UpdateProjectStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.projectService.UpdateStatus(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Project updated successfully"})
}

// ListStudents retrieves the students assigned to the calling mentor
// @Summary List assigned students
// @Description Retrieves the students assigned to the authenticated mentor
// @Tags mentor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentResponse "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentor/students [get]
func (c *MentorController) ListStudents(ctx *gin.Context) {
	mentorID, ok := middleware.CallerID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	students, err := c.studentService.ListStudentsForMentor(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// respondUnauthorized writes the missing-identity response
func respondUnauthorized(ctx *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	errorDetail = errorDetail.WithDetails("User information not found")
	ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
