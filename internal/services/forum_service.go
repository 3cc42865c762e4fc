package services

import (
	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/pagination"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/pkg/apperrors"
)

type ForumService struct {
	forumRepo repositories.ForumRepository
	userRepo  repositories.UserRepository
}

func NewForumService(
	forumRepo repositories.ForumRepository,
	userRepo repositories.UserRepository,
) *ForumService {
	return &ForumService{
		forumRepo: forumRepo,
		userRepo:  userRepo,
	}
}

func (s *ForumService) CreateTopic(authorID string, req *dto.CreateTopicRequest) (*models.Topic, error) {
	company, err := s.userRepo.FindByID(req.CompanyID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if company.Role != models.UserRoleCompany {
		return nil, apperrors.ErrInvalidOperation("forum", "topics can only be opened on company pages")
	}

	topic := &models.Topic{
		CompanyID: req.CompanyID,
		AuthorID:  authorID,
		Title:     req.Title,
	}

	if err := s.forumRepo.CreateTopic(topic); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return topic, nil
}

func (s *ForumService) ListTopics(companyID string, page, limit int) (*pagination.Page[models.Topic], error) {
	result, err := s.forumRepo.ListTopicsByCompany(companyID, page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return result, nil
}

func (s *ForumService) CreateMessage(authorID, topicID string, req *dto.CreateMessageRequest) (*models.Message, error) {
	if _, err := s.forumRepo.FindTopicByID(topicID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	message := &models.Message{
		TopicID:  topicID,
		AuthorID: authorID,
		Body:     req.Body,
	}

	if err := s.forumRepo.CreateMessage(message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

func (s *ForumService) ListMessages(req *dto.ListMessagesRequest) (*pagination.Page[models.Message], error) {
	page, err := s.forumRepo.ListMessages(req.TopicID, req.Page, req.Limit, req.Sort)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return page, nil
}

// DeleteMessage hides a message. Authors can remove their own posts,
// admins anything.
func (s *ForumService) DeleteMessage(userID, messageID string) error {
	message, err := s.forumRepo.FindMessageByID(messageID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if message.AuthorID != userID {
		user, err := s.userRepo.FindByID(userID)
		if err != nil || user.Role != models.UserRoleAdmin {
			return apperrors.ErrInsufficientPermissions
		}
	}

	if err := s.forumRepo.SoftDeleteMessage(messageID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
