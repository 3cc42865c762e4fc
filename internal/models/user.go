package models

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleCompany UserRole = "company"
	UserRoleAdmin   UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusBanned UserStatus = "banned"
)

// User is a single table for all roles; the role column decides what a
// user may do.
type User struct {
	BaseModel
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName string     `gorm:"not null" json:"displayName"`
	Role        UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status      UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	CompanyName string     `json:"companyName,omitempty"`

	// Relations
	Internships  []Internship  `gorm:"foreignKey:CompanyID" json:"-"`
	Applications []Application `gorm:"foreignKey:StudentID" json:"-"`
}
