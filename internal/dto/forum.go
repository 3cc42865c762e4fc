package dto

type CreateTopicRequest struct {
	CompanyID string `json:"companyId" binding:"required" validate:"required,uuid"`
	Title     string `json:"title" binding:"required" validate:"required,min=3,max=200"`
}

type CreateMessageRequest struct {
	Body string `json:"body" binding:"required" validate:"required,min=1,max=5000"`
}

// ListMessagesRequest feeds the narrow message filter: only the topic id
// is recognized.
type ListMessagesRequest struct {
	TopicID string `form:"topicId" json:"topicId"`
	Page    int    `form:"page" json:"page"`
	Limit   int    `form:"limit" json:"limit" binding:"omitempty,max=100"`
	Sort    string `form:"sort" json:"sort"`
}
