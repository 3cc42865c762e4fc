package services

import (
	"time"

	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/pagination"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	internshipRepo  repositories.InternshipRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	internshipRepo repositories.InternshipRepository,
	userRepo repositories.UserRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		userRepo:        userRepo,
	}
}

func (s *ApplicationService) Apply(studentID string, req *dto.CreateApplicationRequest) (*models.Application, error) {
	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if student.Role != models.UserRoleStudent {
		return nil, apperrors.ErrInsufficientPermissions
	}

	internship, err := s.internshipRepo.FindByID(req.InternshipID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if !internship.IsVisible {
		return nil, apperrors.ErrNotFound(repositories.ErrInternshipNotFound)
	}
	if internship.Deadline != nil && internship.Deadline.Before(time.Now()) {
		return nil, apperrors.ErrDeadlinePassed
	}

	if _, err := s.applicationRepo.FindByStudentAndInternship(studentID, req.InternshipID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		InternshipID: req.InternshipID,
		StudentID:    studentID,
		Motivation:   req.Motivation,
		Status:       models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationService) Withdraw(studentID, applicationID string) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if application.StudentID != studentID {
		return apperrors.ErrInsufficientPermissions
	}
	if application.Status != models.ApplicationStatusPending {
		return apperrors.ErrInvalidStatus("applications", "only pending applications can be withdrawn")
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, models.ApplicationStatusWithdrawn); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Decide lets the internship's owning company accept or reject a pending
// application.
func (s *ApplicationService) Decide(companyID, applicationID string, req *dto.DecideApplicationRequest) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	internship, err := s.internshipRepo.FindByID(application.InternshipID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if internship.CompanyID != companyID {
		return apperrors.ErrInsufficientPermissions
	}
	if application.Status != models.ApplicationStatusPending {
		return apperrors.ErrInvalidStatus("applications", "application has already been decided")
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, models.ApplicationStatus(req.Status)); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationService) ListForStudent(studentID string, req *dto.ListApplicationsRequest) (*pagination.Page[models.Application], error) {
	page, err := s.applicationRepo.ListByStudent(studentID, req.Status, req.Page, req.Limit, "created_at DESC")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

// ListForInternship serves the owning company (or an admin) the
// applications on one internship.
func (s *ApplicationService) ListForInternship(requesterID, internshipID string, req *dto.ListApplicationsRequest) (*pagination.Page[models.Application], error) {
	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if internship.CompanyID != requesterID {
		user, err := s.userRepo.FindByID(requesterID)
		if err != nil || user.Role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	page, err := s.applicationRepo.ListByInternship(internshipID, req.Status, req.Page, req.Limit, "created_at DESC")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}
