package repositories

import (
	"errors"

	"gorm.io/gorm"

	"stagelink_backend/internal/models"
	"stagelink_backend/internal/pagination"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByStudentAndInternship(studentID, internshipID string) (*models.Application, error)
	ListByStudent(studentID string, status string, page, limit int, sort string) (*pagination.Page[models.Application], error)
	ListByInternship(internshipID string, status string, page, limit int, sort string) (*pagination.Page[models.Application], error)
	UpdateStatus(id string, status models.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Internship").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByStudentAndInternship(studentID, internshipID string) (*models.Application, error) {
	var application models.Application
	err := r.db.Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByStudent(studentID string, status string, page, limit int, sort string) (*pagination.Page[models.Application], error) {
	tx := r.db.Model(&models.Application{}).Where("student_id = ?", studentID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	return pagination.Paginate[models.Application](tx, page, limit, sort, "Internship")
}

func (r *applicationRepository) ListByInternship(internshipID string, status string, page, limit int, sort string) (*pagination.Page[models.Application], error) {
	tx := r.db.Model(&models.Application{}).Where("internship_id = ?", internshipID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	return pagination.Paginate[models.Application](tx, page, limit, sort, "Student")
}

func (r *applicationRepository) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
