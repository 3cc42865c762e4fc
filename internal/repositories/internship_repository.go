package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stagelink_backend/internal/models"
	"stagelink_backend/internal/pagination"
	"stagelink_backend/internal/search"
)

var ErrInternshipNotFound = errors.New("internship not found")

type InternshipRepository interface {
	Create(internship *models.Internship) error
	FindByID(id string) (*models.Internship, error)
	Update(internship *models.Internship) error
	SoftDelete(id string) error
	IncrementViews(id string) error
	Search(ctx context.Context, criteria search.Criteria, page, limit int, includeHidden bool) (*pagination.Page[models.Internship], error)
}

type internshipRepository struct {
	db       *gorm.DB
	geocoder search.Geocoder
}

func NewInternshipRepository(db *gorm.DB, geocoder search.Geocoder) InternshipRepository {
	return &internshipRepository{db: db, geocoder: geocoder}
}

func (r *internshipRepository) Create(internship *models.Internship) error {
	return r.db.Create(internship).Error
}

func (r *internshipRepository) FindByID(id string) (*models.Internship, error) {
	var internship models.Internship
	err := r.db.Preload("Company").First(&internship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) Update(internship *models.Internship) error {
	result := r.db.Save(internship)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *internshipRepository) SoftDelete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Internship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *internshipRepository) IncrementViews(id string) error {
	return r.db.Model(&models.Internship{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + ?", 1)).Error
}

// Search runs the filter builder against the internships table and pages
// the result. includeHidden is only set in moderation context.
func (r *internshipRepository) Search(ctx context.Context, criteria search.Criteria, page, limit int, includeHidden bool) (*pagination.Page[models.Internship], error) {
	builder := search.NewBuilder(criteria, r.geocoder)
	filter := builder.Build(ctx, includeHidden)

	tx := filter.Apply(r.db.WithContext(ctx).Model(&models.Internship{}))
	return pagination.Paginate[models.Internship](tx, page, limit, builder.BuildSort(), "Company")
}
