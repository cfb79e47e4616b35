package repo

import (
	"gorm.io/gorm"

	"udaan/internal/domain"
)

type NotificationRepo struct{ db *gorm.DB }

func NewNotificationRepo(db *gorm.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// 单次裁剪最多扫这么多条旧通知；每次 Append 都会裁，积压不会超过几条
const trimScanLimit = 1000

// Append 写入并裁剪：收件箱最多保留 keep 条最新记录，防止无限增长
func (r *NotificationRepo) Append(n *domain.Notification, keep int) error {
	if err := r.db.Create(n).Error; err != nil {
		return err
	}
	if keep <= 0 {
		return nil
	}
	var cutoff []string
	if err := r.staleIDs(n.UserID, keep).Pluck("id", &cutoff).Error; err != nil {
		return err
	}
	if len(cutoff) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", cutoff).Delete(&domain.Notification{}).Error
}

// staleIDs 选出第 keep 条之后的旧通知。
// MySQL 不接受不带 LIMIT 的 OFFSET，这里必须两者齐全。
func (r *NotificationRepo) staleIDs(userID string, keep int) *gorm.DB {
	return r.db.Model(&domain.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(trimScanLimit).
		Offset(keep)
}

func (r *NotificationRepo) ListByUser(userID string) ([]domain.Notification, error) {
	var ns []domain.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&ns).Error
	return ns, err
}

func (r *NotificationRepo) MarkRead(userID, id string) (bool, error) {
	res := r.db.Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
