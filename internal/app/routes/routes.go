package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozanc/mentorhub/internal/app/controllers"
	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	mentorController *controllers.MentorController,
	studentController *controllers.StudentController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/admin/login", authController.AdminLogin)
		auth.POST("/mentor/login", authController.MentorLogin)
		auth.POST("/student/login", authController.StudentLogin)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Admin routes
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/students", adminController.CreateStudent)
		admin.GET("/students", adminController.ListStudents)
		admin.PUT("/students/:id", adminController.UpdateStudent)
		admin.DELETE("/students/:id", adminController.DeleteStudent)
		admin.PUT("/students/:id/reset-password", adminController.ResetStudentPassword)

		admin.POST("/mentors", adminController.CreateMentor)
		admin.GET("/mentors", adminController.ListMentors)
		admin.PUT("/mentors/:id", adminController.UpdateMentor)
		admin.DELETE("/mentors/:id", adminController.DeleteMentor)
		admin.PUT("/mentors/:id/reset-password", adminController.ResetMentorPassword)

		admin.POST("/assign-mentor", adminController.AssignMentor)

		admin.GET("/projects", adminController.ListProjects)
		admin.DELETE("/projects/:id", adminController.DeleteProject)
	}

	// Mentor routes
	mentor := authenticated.Group("/mentor")
	mentor.Use(authMiddleware.RoleRequired(models.RoleMentor))
	{
		mentor.GET("/projects", mentorController.ListProjects)
		mentor.PUT("/projects/:id/status", mentorController.UpdateProjectStatus)
		mentor.GET("/students", mentorController.ListStudents)
	}

	// Student routes
	student := authenticated.Group("/student")
	student.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.POST("/projects", studentController.CreateProject)
		student.GET("/projects", studentController.ListProjects)
		student.GET("/projects/:id", studentController.GetProject)
		student.PUT("/projects/:id", studentController.UpdateProjectDetails)
		student.PUT("/github-link", studentController.UpdateGithubLink)
	}

	// Message routes, open to every authenticated role
	messages := authenticated.Group("/messages")
	{
		messages.POST("", messageController.SendMessage)
		messages.GET("/project/:projectId", messageController.GetProjectMessages)
	}
}
