package repository

import (
	"campus_circle_backend/internal/model"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// FriendshipRepository 已确认好友关系的存储
// 好友 ID 集合在 redis 里有一份缓存，写路径负责失效
type FriendshipRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewFriendshipRepository(db *gorm.DB, rdb *redis.Client) *FriendshipRepository {
	return &FriendshipRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func (r *FriendshipRepository) Create(f *model.Friendship) error {
	err := r.DB.Create(f).Error
	if err == nil {
		r.invalidateCache(f.UserOneID, f.UserTwoID)
	}
	return err
}

func (r *FriendshipRepository) FindByID(id string) (*model.Friendship, error) {
	var f model.Friendship
	err := r.DB.Preload("UserOne").Preload("UserTwo").First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindEitherDirection 按无序对查好友关系，{A,B} 与 {B,A} 命中同一条记录
func (r *FriendshipRepository) FindEitherDirection(userA, userB uint) (*model.Friendship, error) {
	low, high := model.NormalizePair(userA, userB)
	var f model.Friendship
	err := r.DB.Where("pair_low = ? AND pair_high = ?", low, high).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FriendshipRepository) ListInvolving(userID uint) ([]model.Friendship, error) {
	var fs []model.Friendship
	err := r.DB.Where("user_one_id = ? OR user_two_id = ?", userID, userID).
		Order("created_at DESC").
		Preload("UserOne").Preload("UserTwo").
		Find(&fs).Error
	return fs, err
}

// GetFriendIDs 好友 ID 列表，用户出现在哪个槽位都算
func (r *FriendshipRepository) GetFriendIDs(userID uint) ([]uint, error) {
	var fs []model.Friendship
	err := r.DB.Select("user_one_id, user_two_id").
		Where("user_one_id = ? OR user_two_id = ?", userID, userID).
		Find(&fs).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(fs))
	for i := range fs {
		ids = append(ids, fs[i].Other(userID))
	}
	return ids, nil
}

// GetFriendIDsCached 获取好友 ID 列表 (带缓存)
func (r *FriendshipRepository) GetFriendIDsCached(userID uint) ([]uint, error) {
	if r.Redis == nil {
		return r.GetFriendIDs(userID)
	}

	key := r.cacheKey(userID)
	cached, err := r.Redis.SMembers(r.ctx, key).Result()
	if err == nil && len(cached) > 0 {
		var ids []uint
		for _, s := range cached {
			var id uint
			fmt.Sscanf(s, "%d", &id)
			if id > 0 {
				ids = append(ids, id)
			}
		}
		return ids, nil
	}

	// 缓存失效，回源数据库
	ids, err := r.GetFriendIDs(userID)
	if err == nil && len(ids) > 0 {
		pipe := r.Redis.Pipeline()
		for _, id := range ids {
			pipe.SAdd(r.ctx, key, id)
		}
		pipe.Expire(r.ctx, key, 24*time.Hour)
		pipe.Exec(r.ctx)
	} else if err == nil {
		// 防止缓存穿透：存一个哨兵值并设置短过期时间
		r.Redis.SAdd(r.ctx, key, 0)
		r.Redis.Expire(r.ctx, key, 5*time.Minute)
	}
	return ids, err
}

func (r *FriendshipRepository) DeleteByID(id string) (bool, error) {
	var f model.Friendship
	if err := r.DB.First(&f, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	res := r.DB.Where("id = ?", id).Delete(&model.Friendship{})
	if res.Error == nil && res.RowsAffected > 0 {
		r.invalidateCache(f.UserOneID, f.UserTwoID)
	}
	return res.RowsAffected > 0, res.Error
}

// DeleteAllInvolving 删除用户两个槽位上的全部关系，注销账号时调用
func (r *FriendshipRepository) DeleteAllInvolving(userID uint) error {
	ids, err := r.GetFriendIDs(userID)
	if err != nil {
		return err
	}

	err = r.DB.Where("user_one_id = ? OR user_two_id = ?", userID, userID).
		Delete(&model.Friendship{}).Error
	if err != nil {
		return err
	}

	r.invalidateCache(append(ids, userID)...)
	return nil
}

func (r *FriendshipRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("relation:friends:%d", userID)
}

func (r *FriendshipRepository) invalidateCache(userIDs ...uint) {
	if r.Redis == nil {
		return
	}
	for _, id := range userIDs {
		r.Redis.Del(r.ctx, r.cacheKey(id))
	}
}
