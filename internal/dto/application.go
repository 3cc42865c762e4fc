package dto

type CreateApplicationRequest struct {
	InternshipID string `json:"internshipId" binding:"required" validate:"required,uuid"`
	Motivation   string `json:"motivation" validate:"max=5000"`
}

type DecideApplicationRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=accepted rejected"`
}

type ListApplicationsRequest struct {
	Status string `form:"status" json:"status" validate:"omitempty,oneof=pending accepted rejected withdrawn"`
	Page   int    `form:"page" json:"page"`
	Limit  int    `form:"limit" json:"limit" binding:"omitempty,max=100"`
	Sort   string `form:"sort" json:"sort"`
}
