package repositories

import (
	"errors"

	"gorm.io/gorm"

	"stagelink_backend/internal/models"
	"stagelink_backend/internal/pagination"
)

var ErrReportNotFound = errors.New("report not found")

type ReportRepository interface {
	Create(report *models.Report) error
	FindByID(id string) (*models.Report, error)
	List(status string, page, limit int) (*pagination.Page[models.Report], error)
	Update(report *models.Report) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) FindByID(id string) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(status string, page, limit int) (*pagination.Page[models.Report], error) {
	tx := r.db.Model(&models.Report{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	return pagination.Paginate[models.Report](tx, page, limit, "created_at DESC", "Reporter")
}

func (r *reportRepository) Update(report *models.Report) error {
	result := r.db.Save(report)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
