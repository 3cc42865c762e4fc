package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/middleware"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/services"
)

type ReportHandler struct {
	*BaseHandler
	reportService *services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.POST("", h.Create)
	}

	admin := r.Group("/admin/reports")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.PUT("/:id", h.Resolve)
	}
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	report, err := h.reportService.Create(h.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (h *ReportHandler) List(c *gin.Context) {
	var req dto.ListReportsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	page, err := h.reportService.List(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ReportHandler) Resolve(c *gin.Context) {
	var req dto.ResolveReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	report, err := h.reportService.Resolve(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
