package models

// Topic is a discussion thread scoped to a company.
type Topic struct {
	BaseModel
	CompanyID string `gorm:"type:uuid;not null;index" json:"companyId"`
	AuthorID  string `gorm:"type:uuid;not null" json:"authorId"`
	Title     string `gorm:"not null" json:"title"`

	Company  *User     `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Messages []Message `gorm:"foreignKey:TopicID" json:"-"`
}

// Message is a forum post inside a topic. Soft delete backs moderation:
// a hidden message stays in the table for the audit trail.
type Message struct {
	BaseModelWithDeleted
	TopicID  string `gorm:"type:uuid;not null;index" json:"topicId"`
	AuthorID string `gorm:"type:uuid;not null" json:"authorId"`
	Body     string `gorm:"not null" json:"body"`

	Topic  *Topic `gorm:"foreignKey:TopicID" json:"-"`
	Author *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
