package service

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/repository"
	"campus_circle_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// UserService 用户目录和账号生命周期
// 注销账号时把各关系存储里引用该用户的记录全部清掉
type UserService struct {
	UserRepo      *repository.UserRepository
	Relationships *RelationshipService
	Trusts        *TrustService
	Posts         *PostService
	Endorsements  *EndorseService
	Levels        *LevelService
}

func NewUserService(
	userRepo *repository.UserRepository,
	relationships *RelationshipService,
	trusts *TrustService,
	posts *PostService,
	endorsements *EndorseService,
	levels *LevelService,
) *UserService {
	return &UserService{
		UserRepo:      userRepo,
		Relationships: relationships,
		Trusts:        trusts,
		Posts:         posts,
		Endorsements:  endorsements,
		Levels:        levels,
	}
}

func (s *UserService) ResolveByName(name string) (*model.User, error) {
	user, err := s.UserRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) ResolveByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) Search(query string) ([]model.User, error) {
	return s.UserRepo.Search(query, 20)
}

func (s *UserService) UpdateProfile(userID uint, name, avatar string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if name != "" && name != user.Name {
		if _, err := s.UserRepo.FindByName(name); err == nil {
			return nil, util.ErrNameRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// DeleteAccount 注销账号：关系、信任、帖子、背书、等级一个不留，
// 两个槽位（发起方/接收方）都要清干净
func (s *UserService) DeleteAccount(userID uint) error {
	if err := s.Relationships.PurgeUser(userID); err != nil {
		return err
	}
	if err := s.Trusts.PurgeUser(userID); err != nil {
		return err
	}
	if err := s.Endorsements.PurgeUser(userID); err != nil {
		return err
	}
	if err := s.Posts.PurgeUser(userID); err != nil {
		return err
	}
	if err := s.Levels.PurgeUser(userID); err != nil {
		return err
	}
	return s.UserRepo.Delete(userID)
}
