package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/app/services"
	"github.com/ozanc/mentorhub/internal/middleware"
)

// MessageController handles the per-project message log, available to all
// three roles
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// SendMessage appends a message to a project's log
// @Summary Send a project message
// @Description Appends a message to the project's log. The sender identity comes from the token.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message content"
// @Success 201 {object} models.Message "Message sent successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	senderID, ok := middleware.CallerID(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	senderRole, ok := middleware.CallerRole(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	message, err := c.messageService.SendMessage(ctx, senderRole, senderID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

// GetProjectMessages retrieves a project's messages in order
// @Summary List project messages
// @Description Retrieves all messages of a project in chronological order
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Success 200 {array} models.Message "Messages retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/project/{projectId} [get]
func (c *MessageController) GetProjectMessages(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "projectId")
	if !ok {
		return
	}

	messages, err := c.messageService.GetProjectMessages(ctx, projectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}
