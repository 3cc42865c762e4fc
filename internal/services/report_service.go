package services

import (
	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/logger"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/pagination"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/pkg/apperrors"
)

type ReportService struct {
	reportRepo     repositories.ReportRepository
	internshipRepo repositories.InternshipRepository
	forumRepo      repositories.ForumRepository
	userRepo       repositories.UserRepository
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	internshipRepo repositories.InternshipRepository,
	forumRepo repositories.ForumRepository,
	userRepo repositories.UserRepository,
) *ReportService {
	return &ReportService{
		reportRepo:     reportRepo,
		internshipRepo: internshipRepo,
		forumRepo:      forumRepo,
		userRepo:       userRepo,
	}
}

func (s *ReportService) Create(reporterID string, req *dto.CreateReportRequest) (*models.Report, error) {
	if err := s.checkTargetExists(models.ReportTargetKind(req.TargetKind), req.TargetID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	report := &models.Report{
		ReporterID: reporterID,
		TargetKind: models.ReportTargetKind(req.TargetKind),
		TargetID:   req.TargetID,
		Reason:     req.Reason,
		Status:     models.ReportStatusOpen,
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return report, nil
}

func (s *ReportService) List(req *dto.ListReportsRequest) (*pagination.Page[models.Report], error) {
	page, err := s.reportRepo.List(req.Status, req.Page, req.Limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

// Resolve closes a report. Resolving (as opposed to dismissing) also
// takes the reported content down: messages are soft-deleted,
// internships hidden.
func (s *ReportService) Resolve(reportID string, req *dto.ResolveReportRequest) (*models.Report, error) {
	report, err := s.reportRepo.FindByID(reportID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if report.Status != models.ReportStatusOpen {
		return nil, apperrors.ErrInvalidStatus("reports", "report has already been closed")
	}

	status := models.ReportStatus(req.Status)
	if status == models.ReportStatusResolved {
		if err := s.takeDownTarget(report); err != nil {
			// The report still closes; the takedown failure is logged
			// for a manual follow-up.
			logger.WithError(err).Warn("report takedown failed",
				"report_id", report.ID, "target_kind", report.TargetKind, "target_id", report.TargetID)
		}
	}

	report.Status = status
	report.Resolution = req.Resolution

	if err := s.reportRepo.Update(report); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return report, nil
}

func (s *ReportService) checkTargetExists(kind models.ReportTargetKind, targetID string) error {
	switch kind {
	case models.ReportTargetInternship:
		_, err := s.internshipRepo.FindByID(targetID)
		return err
	case models.ReportTargetMessage:
		_, err := s.forumRepo.FindMessageByID(targetID)
		return err
	case models.ReportTargetUser:
		_, err := s.userRepo.FindByID(targetID)
		return err
	default:
		return repositories.ErrReportNotFound
	}
}

func (s *ReportService) takeDownTarget(report *models.Report) error {
	switch report.TargetKind {
	case models.ReportTargetMessage:
		return s.forumRepo.SoftDeleteMessage(report.TargetID)
	case models.ReportTargetInternship:
		internship, err := s.internshipRepo.FindByID(report.TargetID)
		if err != nil {
			return err
		}
		internship.IsVisible = false
		return s.internshipRepo.Update(internship)
	default:
		// User reports have no automatic takedown.
		return nil
	}
}
