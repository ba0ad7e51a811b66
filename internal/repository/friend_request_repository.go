package repository

import (
	"campus_circle_backend/internal/model"

	"gorm.io/gorm"
)

// FriendRequestRepository 待处理好友申请的存储
// 对称唯一性不在这里做业务判断：规范化对上的唯一索引兜底，
// 读路径提供 FindEitherDirection 给服务层守卫用
type FriendRequestRepository struct {
	DB *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) *FriendRequestRepository {
	return &FriendRequestRepository{DB: db}
}

func (r *FriendRequestRepository) Create(req *model.FriendRequest) error {
	return r.DB.Create(req).Error
}

func (r *FriendRequestRepository) FindByID(id string) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.DB.Preload("Sender").Preload("Receiver").First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindExact 只查 sender → receiver 这一个方向的申请
func (r *FriendRequestRepository) FindExact(senderID, receiverID uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.DB.Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindEitherDirection 查询两用户之间任一方向的申请
// 规范化对列让双向检查成为单条一致读，不需要 OR 两个方向
func (r *FriendRequestRepository) FindEitherDirection(userA, userB uint) (*model.FriendRequest, error) {
	low, high := model.NormalizePair(userA, userB)
	var req model.FriendRequest
	err := r.DB.Where("pair_low = ? AND pair_high = ?", low, high).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *FriendRequestRepository) ListSentBy(userID uint) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.DB.Where("sender_id = ?", userID).
		Order("created_at DESC").
		Preload("Receiver").
		Find(&reqs).Error
	return reqs, err
}

func (r *FriendRequestRepository) ListReceivedBy(userID uint) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.DB.Where("receiver_id = ?", userID).
		Order("created_at DESC").
		Preload("Sender").
		Find(&reqs).Error
	return reqs, err
}

func (r *FriendRequestRepository) DeleteByID(id string) (bool, error) {
	res := r.DB.Where("id = ?", id).Delete(&model.FriendRequest{})
	return res.RowsAffected > 0, res.Error
}

// DeleteAllInvolving 清掉用户在任一槽位上的所有申请，注销账号时调用
func (r *FriendRequestRepository) DeleteAllInvolving(userID uint) error {
	return r.DB.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Delete(&model.FriendRequest{}).Error
}
