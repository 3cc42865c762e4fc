package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/middleware"
	"stagelink_backend/internal/pagination"
	"stagelink_backend/internal/services"
)

type ForumHandler struct {
	*BaseHandler
	forumService *services.ForumService
}

func NewForumHandler(base *BaseHandler, forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{
		BaseHandler:  base,
		forumService: forumService,
	}
}

func (h *ForumHandler) RegisterRoutes(r *gin.RouterGroup) {
	forum := r.Group("/forum")
	{
		forum.GET("/companies/:id/topics", h.ListTopics)
		forum.GET("/messages", h.ListMessages)
	}

	protected := r.Group("/forum")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/topics", h.CreateTopic)
		protected.POST("/topics/:id/messages", h.CreateMessage)
		protected.DELETE("/messages/:id", h.DeleteMessage)
	}
}

func (h *ForumHandler) CreateTopic(c *gin.Context) {
	var req dto.CreateTopicRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	topic, err := h.forumService.CreateTopic(h.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, topic)
}

func (h *ForumHandler) ListTopics(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)
	limit := ParseQueryInt(c, "limit", pagination.DefaultLimit)

	topics, err := h.forumService.ListTopics(c.Param("id"), page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, topics)
}

func (h *ForumHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.forumService.CreateMessage(h.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *ForumHandler) ListMessages(c *gin.Context) {
	var req dto.ListMessagesRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	messages, err := h.forumService.ListMessages(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *ForumHandler) DeleteMessage(c *gin.Context) {
	if err := h.forumService.DeleteMessage(h.CurrentUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
