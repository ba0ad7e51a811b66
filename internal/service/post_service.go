package service

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/repository"
	"campus_circle_backend/internal/util"
	"campus_circle_backend/pkg/logger"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type levelRecomputer interface {
	Recompute(userID uint) (*model.Level, error)
}

// PostService 帖子增删改查；帖子数变化时顺带重算作者等级
type PostService struct {
	PostRepo    *repository.PostRepository
	EndorseRepo *repository.EndorsementRepository
	Levels      levelRecomputer
}

func NewPostService(postRepo *repository.PostRepository, endorseRepo *repository.EndorsementRepository, levels levelRecomputer) *PostService {
	return &PostService{
		PostRepo:    postRepo,
		EndorseRepo: endorseRepo,
		Levels:      levels,
	}
}

func (s *PostService) CreatePost(authorID uint, content string) (*model.Post, error) {
	post := &model.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}

	s.recomputeLevel(authorID)
	return post, nil
}

func (s *PostService) GetPost(id uint) (*model.Post, error) {
	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPosts(page, limit int, authorID uint) ([]model.Post, int64, error) {
	offset := (page - 1) * limit
	return s.PostRepo.FindWithPagination(offset, limit, authorID)
}

func (s *PostService) UpdatePost(actorID, postID uint, content string) (*model.Post, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, util.ErrPermissionDenied
	}

	post.Content = content
	if err := s.PostRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(actorID, postID uint) error {
	post, err := s.GetPost(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return util.ErrPermissionDenied
	}

	if err := s.EndorseRepo.DeleteAllByPost(postID); err != nil {
		return err
	}
	if err := s.PostRepo.Delete(postID); err != nil {
		return err
	}

	s.recomputeLevel(actorID)
	return nil
}

func (s *PostService) PurgeUser(userID uint) error {
	posts, _, err := s.PostRepo.FindWithPagination(0, -1, userID)
	if err != nil {
		return err
	}
	for i := range posts {
		if err := s.EndorseRepo.DeleteAllByPost(posts[i].ID); err != nil {
			return err
		}
	}
	return s.PostRepo.DeleteAllByAuthor(userID)
}

func (s *PostService) recomputeLevel(userID uint) {
	if _, err := s.Levels.Recompute(userID); err != nil {
		logger.Log.Error("level recompute failed", zap.Uint("userId", userID), zap.Error(err))
	}
}
