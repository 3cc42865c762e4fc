package services

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/pagination"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/pkg/apperrors"
)

type InternshipService struct {
	internshipRepo repositories.InternshipRepository
	userRepo       repositories.UserRepository
}

func NewInternshipService(
	internshipRepo repositories.InternshipRepository,
	userRepo repositories.UserRepository,
) *InternshipService {
	return &InternshipService{
		internshipRepo: internshipRepo,
		userRepo:       userRepo,
	}
}

func (s *InternshipService) Create(companyID string, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	company, err := s.userRepo.FindByID(companyID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if company.Role != models.UserRoleCompany {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.MinSalary != nil && req.MaxSalary != nil && *req.MaxSalary < *req.MinSalary {
		return nil, apperrors.ErrInvalidOperation("internships", "maximum salary cannot be less than minimum salary")
	}

	keySkillsJSON, err := json.Marshal(nonNilSkills(req.KeySkills))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key skills: %w", err)
	}

	internship := &models.Internship{
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		Sector:      req.Sector,
		Duration:    req.Duration,
		Type:        models.InternshipType(req.Type),
		KeySkills:   datatypes.JSON(keySkillsJSON),
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsVisible:   true,
		Deadline:    req.Deadline,
	}

	if err := s.internshipRepo.Create(internship); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

func (s *InternshipService) Update(userID, internshipID string, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if err := s.requireOwnerOrAdmin(userID, internship); err != nil {
		return nil, err
	}

	if req.Title != nil {
		internship.Title = *req.Title
	}
	if req.Description != nil {
		internship.Description = *req.Description
	}
	if req.Sector != nil {
		internship.Sector = *req.Sector
	}
	if req.Duration != nil {
		internship.Duration = *req.Duration
	}
	if req.Type != nil {
		internship.Type = models.InternshipType(*req.Type)
	}
	if req.KeySkills != nil {
		keySkillsJSON, err := json.Marshal(req.KeySkills)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key skills: %w", err)
		}
		internship.KeySkills = datatypes.JSON(keySkillsJSON)
	}
	if req.MinSalary != nil {
		internship.MinSalary = req.MinSalary
	}
	if req.MaxSalary != nil {
		internship.MaxSalary = req.MaxSalary
	}
	if req.City != nil {
		internship.City = *req.City
	}
	if req.Latitude != nil {
		internship.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		internship.Longitude = req.Longitude
	}
	if req.IsVisible != nil {
		internship.IsVisible = *req.IsVisible
	}
	if req.Deadline != nil {
		internship.Deadline = req.Deadline
	}

	if internship.MinSalary != nil && internship.MaxSalary != nil && *internship.MaxSalary < *internship.MinSalary {
		return nil, apperrors.ErrInvalidOperation("internships", "maximum salary cannot be less than minimum salary")
	}

	if err := s.internshipRepo.Update(internship); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

func (s *InternshipService) Delete(userID, internshipID string) error {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.requireOwnerOrAdmin(userID, internship); err != nil {
		return err
	}

	if err := s.internshipRepo.SoftDelete(internshipID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Get returns a single internship. Hidden posts are only served to their
// owner and to admins; everyone else gets a 404, not a 403, to avoid
// leaking existence.
func (s *InternshipService) Get(viewerID, internshipID string) (*models.Internship, error) {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if !internship.IsVisible {
		if err := s.requireOwnerOrAdmin(viewerID, internship); err != nil {
			return nil, apperrors.ErrNotFound(repositories.ErrInternshipNotFound)
		}
	}

	// View counting is best effort.
	_ = s.internshipRepo.IncrementViews(internshipID)
	internship.Views++

	return internship, nil
}

// List runs the public listing. includeHidden is reserved for moderation
// callers; the handler only sets it for admins.
func (s *InternshipService) List(ctx context.Context, req *dto.ListInternshipsRequest, includeHidden bool) (*pagination.Page[models.Internship], error) {
	page, err := s.internshipRepo.Search(ctx, req.ToCriteria(), req.Page, req.Limit, includeHidden)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

func (s *InternshipService) requireOwnerOrAdmin(userID string, internship *models.Internship) error {
	if internship.CompanyID == userID {
		return nil
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil || user.Role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

func nonNilSkills(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
