package repositories

import (
	"errors"

	"gorm.io/gorm"

	"stagelink_backend/internal/models"
	"stagelink_backend/internal/pagination"
	"stagelink_backend/internal/search"
)

var (
	ErrTopicNotFound   = errors.New("topic not found")
	ErrMessageNotFound = errors.New("message not found")
)

type ForumRepository interface {
	CreateTopic(topic *models.Topic) error
	FindTopicByID(id string) (*models.Topic, error)
	ListTopicsByCompany(companyID string, page, limit int) (*pagination.Page[models.Topic], error)

	CreateMessage(message *models.Message) error
	FindMessageByID(id string) (*models.Message, error)
	ListMessages(topicID string, page, limit int, sort string) (*pagination.Page[models.Message], error)
	SoftDeleteMessage(id string) error
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) CreateTopic(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

func (r *forumRepository) FindTopicByID(id string) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.First(&topic, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return &topic, nil
}

func (r *forumRepository) ListTopicsByCompany(companyID string, page, limit int) (*pagination.Page[models.Topic], error) {
	tx := r.db.Model(&models.Topic{}).Where("company_id = ?", companyID)
	return pagination.Paginate[models.Topic](tx, page, limit, "created_at DESC")
}

func (r *forumRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *forumRepository) FindMessageByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// ListMessages goes through the narrow message filter so topic listing
// shares the predicate shape with the main listing path.
func (r *forumRepository) ListMessages(topicID string, page, limit int, sort string) (*pagination.Page[models.Message], error) {
	filter := search.BuildMessageFilter(topicID)
	tx := filter.Apply(r.db.Model(&models.Message{}))
	return pagination.Paginate[models.Message](tx, page, limit, search.BuildSort(sort), "Author")
}

func (r *forumRepository) SoftDeleteMessage(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Message{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
