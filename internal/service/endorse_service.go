package service

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type endorsementStore interface {
	Create(e *model.Endorsement) error
	Find(giverID, postID uint) (*model.Endorsement, error)
	ListByPost(postID uint) ([]model.Endorsement, error)
	CountByPost(postID uint) (int64, error)
	Delete(giverID, postID uint) (bool, error)
	DeleteAllByGiver(giverID uint) error
}

type postReader interface {
	FindByID(id uint) (*model.Post, error)
}

type privilegeReader interface {
	GetForUser(userID uint) (*model.Level, error)
}

// EndorseService 帖子背书，等级权限的消费方
type EndorseService struct {
	Endorsements endorsementStore
	Posts        postReader
	Levels       privilegeReader
}

func NewEndorseService(endorsements endorsementStore, posts postReader, levels privilegeReader) *EndorseService {
	return &EndorseService{
		Endorsements: endorsements,
		Posts:        posts,
		Levels:       levels,
	}
}

// Endorse 背书一篇帖子：需要 CanEndorse 权限，不能背书自己的帖子
func (s *EndorseService) Endorse(actorID, postID uint) (*model.Endorsement, error) {
	level, err := s.Levels.GetForUser(actorID)
	if err != nil {
		return nil, err
	}
	if !level.CanEndorse {
		return nil, util.ErrEndorseNotAllowed
	}

	post, err := s.Posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}

	if post.AuthorID == actorID {
		return nil, util.ErrSelfRelation
	}

	if _, err := s.Endorsements.Find(actorID, postID); err == nil {
		return nil, util.ErrEndorseExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &model.Endorsement{
		GiverID: actorID,
		PostID:  postID,
	}
	if err := s.Endorsements.Create(e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEndorseExists
		}
		return nil, err
	}
	return e, nil
}

func (s *EndorseService) Unendorse(actorID, postID uint) error {
	deleted, err := s.Endorsements.Delete(actorID, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrEndorseNotFound
	}
	return nil
}

func (s *EndorseService) ListForPost(postID uint) ([]model.Endorsement, error) {
	return s.Endorsements.ListByPost(postID)
}

func (s *EndorseService) CountForPost(postID uint) (int64, error) {
	return s.Endorsements.CountByPost(postID)
}

func (s *EndorseService) PurgeUser(userID uint) error {
	return s.Endorsements.DeleteAllByGiver(userID)
}
