package service

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type trustStore interface {
	Create(t *model.Trust) error
	Find(giverID, receiverID uint) (*model.Trust, error)
	ListGivenBy(userID uint) ([]model.Trust, error)
	ListReceivedBy(userID uint) ([]model.Trust, error)
	DeleteOne(giverID, receiverID uint) (bool, error)
	DeleteAllInvolving(userID uint) error
}

// TrustService 单向信任，没有申请环节，NONE 直接到 ESTABLISHED
// 只查精确方向：A 信任 B 不妨碍 B 再单独信任 A
type TrustService struct {
	Trusts trustStore
	Users  userDirectory
}

func NewTrustService(trusts trustStore, users userDirectory) *TrustService {
	return &TrustService{Trusts: trusts, Users: users}
}

func (s *TrustService) Establish(giverID uint, receiverName string) (*model.Trust, error) {
	receiver, err := s.Users.FindByName(receiverName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if receiver.ID == giverID {
		return nil, util.ErrSelfRelation
	}

	if _, err := s.Trusts.Find(giverID, receiver.ID); err == nil {
		return nil, util.ErrTrustExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t := &model.Trust{
		GiverID:    giverID,
		ReceiverID: receiver.ID,
	}
	if err := s.Trusts.Create(t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrTrustExists
		}
		return nil, err
	}
	return t, nil
}

func (s *TrustService) Revoke(giverID uint, receiverName string) error {
	receiver, err := s.Users.FindByName(receiverName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	deleted, err := s.Trusts.DeleteOne(giverID, receiver.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrTrustNotFound
	}
	return nil
}

func (s *TrustService) GivenBy(userID uint) ([]model.Trust, error) {
	return s.Trusts.ListGivenBy(userID)
}

func (s *TrustService) ReceivedBy(userID uint) ([]model.Trust, error) {
	return s.Trusts.ListReceivedBy(userID)
}

func (s *TrustService) PurgeUser(userID uint) error {
	return s.Trusts.DeleteAllInvolving(userID)
}
