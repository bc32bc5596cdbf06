package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/app/services"
	"github.com/ozanc/mentorhub/internal/middleware"
)

// AdminController handles admin-only management of students, mentors and projects
type AdminController struct {
	studentService services.StudentService
	mentorService  services.MentorService
	projectService services.ProjectService
}

// NewAdminController creates a new AdminController
func NewAdminController(studentService services.StudentService, mentorService services.MentorService, projectService services.ProjectService) *AdminController {
	return &AdminController{
		studentService: studentService,
		mentorService:  mentorService,
		projectService: projectService,
	}
}

// CreateStudent registers a new student account
// @Summary Create a new student
// @Description Registers a student with a unique PRN and email
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} models.Student "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "PRN or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// ListStudents retrieves all students
// @Summary List all students
// @Description Retrieves every student joined with the assigned mentor's name
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// UpdateStudent applies a partial update to a student
// @Summary Update a student
// @Description Updates the supplied fields of a student; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or mentor not found"
// @Failure 409 {object} dto.ErrorResponse "PRN or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [put]
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.studentService.UpdateStudent(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student updated successfully"})
}

// DeleteStudent removes a student and their non-approved projects
// @Summary Delete a student
// @Description Deletes a student. Fails if the student has any approved project.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Student has approved projects"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [delete]
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}

// ResetStudentPassword overwrites a student's password
// @Summary Reset a student's password
// @Description Sets a new password for the student without confirmation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.SuccessResponse "Password reset successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id}/reset-password [put]
func (c *AdminController) ResetStudentPassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.studentService.ResetPassword(ctx, id, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Password reset successfully"})
}

// CreateMentor registers a new mentor account
// @Summary Create a new mentor
// @Description Registers a mentor with a unique email
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorRequest true "Mentor information"
// @Success 201 {object} models.Mentor "Mentor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mentors [post]
func (c *AdminController) CreateMentor(ctx *gin.Context) {
	var req dto.CreateMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	mentor, err := c.mentorService.CreateMentor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mentor)
}

// ListMentors retrieves all mentors
// @Summary List all mentors
// @Description Retrieves every mentor record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MentorResponse "Mentors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mentors [get]
func (c *AdminController) ListMentors(ctx *gin.Context) {
	mentors, err := c.mentorService.ListMentors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mentors)
}

// UpdateMentor applies a partial update to a mentor
// @Summary Update a mentor
// @Description Updates the supplied fields of a mentor; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Param request body dto.UpdateMentorRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse "Mentor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mentors/{id} [put]
func (c *AdminController) UpdateMentor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.mentorService.UpdateMentor(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Mentor updated successfully"})
}

// DeleteMentor removes a mentor, their projects, and their student links
// @Summary Delete a mentor
// @Description Deletes a mentor, all projects assigned to them, and unassigns their students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.SuccessResponse "Mentor deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mentors/{id} [delete]
func (c *AdminController) DeleteMentor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.mentorService.DeleteMentor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Mentor deleted successfully"})
}

// ResetMentorPassword overwrites a mentor's password
// @Summary Reset a mentor's password
// @Description Sets a new password for the mentor without confirmation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.SuccessResponse "Password reset successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mentors/{id}/reset-password [put]
func (c *AdminController) ResetMentorPassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.mentorService.ResetPassword(ctx, id, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Password reset successfully"})
}

// AssignMentor links a student to a mentor
// @Summary Assign a mentor to a student
// @Description Sets or replaces the student's mentor assignment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignMentorRequest true "Student and mentor ids"
// @Success 200 {object} dto.SuccessResponse "Mentor assigned successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assign-mentor [post]
func (c *AdminController) AssignMentor(ctx *gin.Context) {
	var req dto.AssignMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.studentService.AssignMentor(ctx, req.StudentID, req.MentorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Mentor assigned successfully"})
}

// ListProjects retrieves all projects across students
// @Summary List all projects
// @Description Retrieves every project joined with student and mentor names
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AdminProjectResponse "Projects retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/projects [get]
func (c *AdminController) ListProjects(ctx *gin.Context) {
	projects, err := c.projectService.ListProjectsAdmin(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// DeleteProject removes a project unless it has been approved
// @Summary Delete a project
// @Description Deletes a project. Approved projects cannot be deleted.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.SuccessResponse "Project deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Project is approved"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/projects/{id} [delete]
func (c *AdminController) DeleteProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Project deleted successfully"})
}
