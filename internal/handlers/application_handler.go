package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/middleware"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/services"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", middleware.RequireRoles(models.UserRoleStudent), h.Apply)
		applications.GET("/mine", middleware.RequireRoles(models.UserRoleStudent), h.ListMine)
		applications.POST("/:id/withdraw", middleware.RequireRoles(models.UserRoleStudent), h.Withdraw)
		applications.PUT("/:id/decision", middleware.RequireRoles(models.UserRoleCompany), h.Decide)
	}

	byInternship := r.Group("/internships/:id/applications")
	byInternship.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin))
	{
		byInternship.GET("", h.ListForInternship)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(h.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	var req dto.ListApplicationsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	page, err := h.applicationService.ListForStudent(h.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := h.applicationService.Withdraw(h.CurrentUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ApplicationHandler) Decide(c *gin.Context) {
	var req dto.DecideApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.applicationService.Decide(h.CurrentUserID(c), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ApplicationHandler) ListForInternship(c *gin.Context) {
	var req dto.ListApplicationsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	page, err := h.applicationService.ListForInternship(h.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
