package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/middleware"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/services"
)

type InternshipHandler struct {
	*BaseHandler
	internshipService *services.InternshipService
}

func NewInternshipHandler(base *BaseHandler, internshipService *services.InternshipService) *InternshipHandler {
	return &InternshipHandler{
		BaseHandler:       base,
		internshipService: internshipService,
	}
}

func (h *InternshipHandler) RegisterRoutes(r *gin.RouterGroup) {
	internships := r.Group("/internships")
	{
		internships.GET("", h.List)
		internships.GET("/:id", h.Get)
	}

	protected := r.Group("/internships")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", middleware.RequireRoles(models.UserRoleCompany), h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}

	moderation := r.Group("/moderation/internships")
	moderation.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		moderation.GET("", h.ListModeration)
	}
}

// List is the public listing endpoint; hidden posts never appear here.
func (h *InternshipHandler) List(c *gin.Context) {
	var req dto.ListInternshipsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	page, err := h.internshipService.List(c.Request.Context(), &req, false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListModeration is the admin listing: same filters, hidden posts
// included.
func (h *InternshipHandler) ListModeration(c *gin.Context) {
	var req dto.ListInternshipsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	page, err := h.internshipService.List(c.Request.Context(), &req, true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *InternshipHandler) Get(c *gin.Context) {
	internship, err := h.internshipService.Get(h.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internship)
}

func (h *InternshipHandler) Create(c *gin.Context) {
	var req dto.CreateInternshipRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	internship, err := h.internshipService.Create(h.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, internship)
}

func (h *InternshipHandler) Update(c *gin.Context) {
	var req dto.UpdateInternshipRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	internship, err := h.internshipService.Update(h.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internship)
}

func (h *InternshipHandler) Delete(c *gin.Context) {
	if err := h.internshipService.Delete(h.CurrentUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
