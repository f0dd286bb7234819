package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/stylehaven/storefront/internal/logger"
	"github.com/stylehaven/storefront/internal/models"

	"gorm.io/gorm"
)

// CartSessionRepository 会话购物车数据访问接口。
// 每个会话对应一行，行项数组整体序列化为 JSON 载荷存储。
type CartSessionRepository interface {
	Load(sessionID string) ([]models.CartLine, error)
	Save(sessionID string, items []models.CartLine) error
	Delete(sessionID string) error
	DeleteExpired(before time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormCartSessionRepository
}

// GormCartSessionRepository GORM 实现
type GormCartSessionRepository struct {
	db *gorm.DB
}

// NewCartSessionRepository 创建会话购物车仓库
func NewCartSessionRepository(db *gorm.DB) *GormCartSessionRepository {
	return &GormCartSessionRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartSessionRepository) WithTx(tx *gorm.DB) *GormCartSessionRepository {
	if tx == nil {
		return r
	}
	return &GormCartSessionRepository{db: tx}
}

// Load 读取会话购物车行项。
// 会话不存在返回空；载荷损坏时记录日志并按空购物车处理，不向上传播错误。
func (r *GormCartSessionRepository) Load(sessionID string) ([]models.CartLine, error) {
	if sessionID == "" {
		return []models.CartLine{}, nil
	}
	var session models.CartSession
	err := r.db.Where("session_id = ?", sessionID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}
	if session.Payload == "" {
		return []models.CartLine{}, nil
	}
	var items []models.CartLine
	if err := json.Unmarshal([]byte(session.Payload), &items); err != nil {
		logger.Warnw("cart_payload_malformed",
			"session_id", sessionID,
			"error", err,
		)
		return []models.CartLine{}, nil
	}
	if items == nil {
		items = []models.CartLine{}
	}
	return items, nil
}

// Save 写入会话购物车的完整行项数组
func (r *GormCartSessionRepository) Save(sessionID string, items []models.CartLine) error {
	if sessionID == "" {
		return nil
	}
	if items == nil {
		items = []models.CartLine{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	now := time.Now()
	var existing models.CartSession
	err = r.db.Where("session_id = ?", sessionID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.CartSession{
			SessionID: sessionID,
			Payload:   string(payload),
			CreatedAt: now,
			UpdatedAt: now,
		}).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"payload":    string(payload),
		"updated_at": now,
	}
	return r.db.Model(&existing).Updates(updates).Error
}

// Delete 删除会话购物车
func (r *GormCartSessionRepository) Delete(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return r.db.Where("session_id = ?", sessionID).Delete(&models.CartSession{}).Error
}

// DeleteExpired 清理超过保留期的会话
func (r *GormCartSessionRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("updated_at < ?", before).Delete(&models.CartSession{})
	return result.RowsAffected, result.Error
}
