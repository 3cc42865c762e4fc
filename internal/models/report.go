package models

type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "open"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

type ReportTargetKind string

const (
	ReportTargetInternship ReportTargetKind = "internship"
	ReportTargetMessage    ReportTargetKind = "message"
	ReportTargetUser       ReportTargetKind = "user"
)

// Report is a moderation request against an internship, a forum message
// or a user.
type Report struct {
	BaseModel
	ReporterID string           `gorm:"type:uuid;not null;index" json:"reporterId"`
	TargetKind ReportTargetKind `gorm:"type:varchar(20);not null" json:"targetKind"`
	TargetID   string           `gorm:"type:uuid;not null;index" json:"targetId"`
	Reason     string           `gorm:"not null" json:"reason"`
	Status     ReportStatus     `gorm:"type:varchar(20);default:'open';index" json:"status"`
	Resolution string           `json:"resolution,omitempty"`

	Reporter *User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
}
