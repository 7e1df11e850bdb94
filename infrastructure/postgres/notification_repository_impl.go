package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
)

const notificationTable = "notifications"

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	return translate("create", notificationTable, r.db.WithContext(ctx).Create(notification).Error)
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, translate("get_by_id", notificationTable, err)
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) List(ctx context.Context, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error) {
	notifications := make([]models.Notification, 0)
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Notification{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate("count", notificationTable, err)
	}

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, translate("list", notificationTable, err)
	}

	return notifications, total, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).Where("is_read = ?", false).Count(&count).Error
	return count, translate("count_unread", notificationTable, err)
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	return affected("mark_read", notificationTable, result)
}

func (r *NotificationRepositoryImpl) MarkAllRead(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Notification{}).Where("is_read = ?", false).Update("is_read", true)
	return result.RowsAffected, translate("mark_all_read", notificationTable, result.Error)
}

func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Notification{})
	return affected("delete", notificationTable, result)
}
