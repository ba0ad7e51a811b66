package repository

import (
	"campus_circle_backend/internal/model"

	"gorm.io/gorm"
)

type EndorsementRepository struct {
	DB *gorm.DB
}

func NewEndorsementRepository(db *gorm.DB) *EndorsementRepository {
	return &EndorsementRepository{DB: db}
}

func (r *EndorsementRepository) Create(e *model.Endorsement) error {
	return r.DB.Create(e).Error
}

func (r *EndorsementRepository) Find(giverID, postID uint) (*model.Endorsement, error) {
	var e model.Endorsement
	err := r.DB.Where("giver_id = ? AND post_id = ?", giverID, postID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EndorsementRepository) ListByPost(postID uint) ([]model.Endorsement, error) {
	var es []model.Endorsement
	err := r.DB.Where("post_id = ?", postID).
		Order("created_at DESC").
		Preload("Giver").
		Find(&es).Error
	return es, err
}

func (r *EndorsementRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Endorsement{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *EndorsementRepository) Delete(giverID, postID uint) (bool, error) {
	res := r.DB.Where("giver_id = ? AND post_id = ?", giverID, postID).
		Delete(&model.Endorsement{})
	return res.RowsAffected > 0, res.Error
}

func (r *EndorsementRepository) DeleteAllByGiver(giverID uint) error {
	return r.DB.Where("giver_id = ?", giverID).Delete(&model.Endorsement{}).Error
}

func (r *EndorsementRepository) DeleteAllByPost(postID uint) error {
	return r.DB.Where("post_id = ?", postID).Delete(&model.Endorsement{}).Error
}
