package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/app/services"
	"github.com/ozanc/mentorhub/internal/middleware"
)

// StudentController handles student-facing project submission and self-service.
// The student's identity always comes from the token, never from the request.
type StudentController struct {
	projectService services.ProjectService
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(projectService services.ProjectService, studentService services.StudentService) *StudentController {
	return &StudentController{
		projectService: projectService,
		studentService: studentService,
	}
}

// CreateProject submits a new project for the calling student
// @Summary Submit a project
// @Description Registers a new project owned by the authenticated student
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project information"
// @Success 201 {object} models.Project "Project created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/projects [post]
func (c *StudentController) CreateProject(ctx *gin.Context) {
	studentID, ok := middleware.CallerID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	project, err := c.projectService.CreateProject(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// ListProjects retrieves the calling student's projects
// @Summary List own projects
// @Description Retrieves the authenticated student's projects
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentProjectResponse "Projects retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/projects [get]
func (c *StudentController) ListProjects(ctx *gin.Context) {
	studentID, ok := middleware.CallerID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	projects, err := c.projectService.ListProjectsForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// GetProject retrieves one of the calling student's projects
// @Summary Get own project
// @Description Retrieves a single project owned by the authenticated student
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.StudentProjectResponse "Project retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Project belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/projects/{id} [get]
func (c *StudentController) GetProject(ctx *gin.Context) {
	studentID, ok := middleware.CallerID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	project, err := c.projectService.GetProject(ctx, studentID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// UpdateProjectDetails updates the student-writable fields of an owned project
// @Summary Update own project
// @Description Updates title, description or repository link of an owned project
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectDetailsRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse "Project updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Project belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/projects/{id} [put]
func (c *StudentController) UpdateProjectDetails(ctx *gin.Context) {
	studentID, ok := middleware.CallerID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.projectService.UpdateDetails(ctx, studentID, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Project updated successfully"})
}

// UpdateGithubLink updates the calling student's repository link
// @Summary Update own GitHub link
// @Description Sets the authenticated student's repository link
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateGithubLinkRequest true "Repository link"
// @Success 200 {object} dto.SuccessResponse "GitHub link updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/github-link [put]
func (c *StudentController) UpdateGithubLink(ctx *gin.Context) {
	studentID, ok := middleware.CallerID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.UpdateGithubLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.studentService.UpdateGithubLink(ctx, studentID, req.GithubLink); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "GitHub link updated successfully"})
}
