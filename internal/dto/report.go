package dto

type CreateReportRequest struct {
	TargetKind string `json:"targetKind" binding:"required" validate:"required,oneof=internship message user"`
	TargetID   string `json:"targetId" binding:"required" validate:"required,uuid"`
	Reason     string `json:"reason" binding:"required" validate:"required,min=3,max=2000"`
}

type ResolveReportRequest struct {
	Status     string `json:"status" binding:"required" validate:"required,oneof=resolved dismissed"`
	Resolution string `json:"resolution" validate:"max=2000"`
}

type ListReportsRequest struct {
	Status string `form:"status" json:"status" validate:"omitempty,oneof=open resolved dismissed"`
	Page   int    `form:"page" json:"page"`
	Limit  int    `form:"limit" json:"limit" binding:"omitempty,max=100"`
}
