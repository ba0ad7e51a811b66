package service

import (
	"campus_circle_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type levelStore interface {
	Create(level *model.Level) error
	FindByUser(userID uint) (*model.Level, error)
	Update(level *model.Level) error
	DeleteByUser(userID uint) error
}

type postCounter interface {
	CountByAuthor(authorID uint) (int64, error)
}

// LevelService 把发帖数换算成等级和权限
// 只被内容侧调用，关系状态机从不触发它
type LevelService struct {
	Levels levelStore
	Posts  postCounter
}

func NewLevelService(levels levelStore, posts postCounter) *LevelService {
	return &LevelService{Levels: levels, Posts: posts}
}

// InitForUser 注册时建等级记录，0 级无权限
func (s *LevelService) InitForUser(userID uint) error {
	return s.Levels.Create(&model.Level{
		UserID:     userID,
		Level:      0,
		Privileges: model.ComputePrivileges(0),
	})
}

// Recompute 按当前发帖数重算等级和权限，发帖/删帖后调用
func (s *LevelService) Recompute(userID uint) (*model.Level, error) {
	count, err := s.Posts.CountByAuthor(userID)
	if err != nil {
		return nil, err
	}

	level, err := s.Levels.FindByUser(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		level = &model.Level{UserID: userID}
		level.Level = int(count)
		level.Privileges = model.ComputePrivileges(count)
		return level, s.Levels.Create(level)
	}

	level.Level = int(count)
	level.Privileges = model.ComputePrivileges(count)
	return level, s.Levels.Update(level)
}

// GetForUser 读取等级，缺记录时按当前发帖数补算一条
func (s *LevelService) GetForUser(userID uint) (*model.Level, error) {
	level, err := s.Levels.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.Recompute(userID)
		}
		return nil, err
	}
	return level, nil
}

func (s *LevelService) PurgeUser(userID uint) error {
	return s.Levels.DeleteByUser(userID)
}
