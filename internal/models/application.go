package models

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// Application links a student to an internship. One application per
// student per internship, enforced by a composite unique index.
type Application struct {
	BaseModel
	InternshipID string            `gorm:"type:uuid;not null;uniqueIndex:idx_application_unique" json:"internshipId"`
	StudentID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_application_unique" json:"studentId"`
	Motivation   string            `json:"motivation"`
	Status       ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	Internship *Internship `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
	Student    *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
