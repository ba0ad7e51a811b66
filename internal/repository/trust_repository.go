package repository

import (
	"campus_circle_backend/internal/model"

	"gorm.io/gorm"
)

// TrustRepository 单向信任关系的存储
// Create 不做唯一性判断，由服务层守卫加 (giver, receiver) 唯一索引兜底
type TrustRepository struct {
	DB *gorm.DB
}

func NewTrustRepository(db *gorm.DB) *TrustRepository {
	return &TrustRepository{DB: db}
}

func (r *TrustRepository) Create(t *model.Trust) error {
	return r.DB.Create(t).Error
}

func (r *TrustRepository) Find(giverID, receiverID uint) (*model.Trust, error) {
	var t model.Trust
	err := r.DB.Where("giver_id = ? AND receiver_id = ?", giverID, receiverID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrustRepository) ListGivenBy(userID uint) ([]model.Trust, error) {
	var ts []model.Trust
	err := r.DB.Where("giver_id = ?", userID).
		Order("created_at DESC").
		Preload("Receiver").
		Find(&ts).Error
	return ts, err
}

func (r *TrustRepository) ListReceivedBy(userID uint) ([]model.Trust, error) {
	var ts []model.Trust
	err := r.DB.Where("receiver_id = ?", userID).
		Order("created_at DESC").
		Preload("Giver").
		Find(&ts).Error
	return ts, err
}

func (r *TrustRepository) DeleteOne(giverID, receiverID uint) (bool, error) {
	res := r.DB.Where("giver_id = ? AND receiver_id = ?", giverID, receiverID).
		Delete(&model.Trust{})
	return res.RowsAffected > 0, res.Error
}

// DeleteAllInvolving 删除用户给出和收到的全部信任，注销账号时调用
func (r *TrustRepository) DeleteAllInvolving(userID uint) error {
	return r.DB.Where("giver_id = ? OR receiver_id = ?", userID, userID).
		Delete(&model.Trust{}).Error
}
