package model

import (
	"time"

	"gorm.io/gorm"
)

// NormalizePair 把无序对 {a,b} 规范化为 (low, high)，作为唯一索引键
// {A,B} 与 {B,A} 指同一实体，规范化后免去双向 OR 查询
func NormalizePair(a, b uint) (low, high uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// FriendRequest 好友申请：sender 发给 receiver，等待确认
// 唯一索引建在规范化对上：同一对用户无论方向最多一条申请
type FriendRequest struct {
	UUIDBase
	SenderID   uint `gorm:"index;not null" json:"senderId"`
	Sender     User `gorm:"foreignKey:SenderID;references:ID;constraint:false" json:"sender,omitempty"`
	ReceiverID uint `gorm:"index;not null" json:"receiverId"`
	Receiver   User `gorm:"foreignKey:ReceiverID;references:ID;constraint:false" json:"receiver,omitempty"`
	PairLow    uint `gorm:"uniqueIndex:uniq_request_pair;not null" json:"-"`
	PairHigh   uint `gorm:"uniqueIndex:uniq_request_pair;not null" json:"-"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}

func (r *FriendRequest) BeforeCreate(tx *gorm.DB) error {
	r.PairLow, r.PairHigh = NormalizePair(r.SenderID, r.ReceiverID)
	return r.UUIDBase.BeforeCreate(tx)
}

// Friendship 已确认的双向好友关系，一对用户最多一条记录
type Friendship struct {
	UUIDBase
	UserOneID uint `gorm:"index;not null" json:"userOneId"`
	UserOne   User `gorm:"foreignKey:UserOneID;references:ID;constraint:false" json:"userOne,omitempty"`
	UserTwoID uint `gorm:"index;not null" json:"userTwoId"`
	UserTwo   User `gorm:"foreignKey:UserTwoID;references:ID;constraint:false" json:"userTwo,omitempty"`
	PairLow   uint `gorm:"uniqueIndex:uniq_friendship_pair;not null" json:"-"`
	PairHigh  uint `gorm:"uniqueIndex:uniq_friendship_pair;not null" json:"-"`
}

func (Friendship) TableName() string {
	return "friendships"
}

func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	f.PairLow, f.PairHigh = NormalizePair(f.UserOneID, f.UserTwoID)
	return f.UUIDBase.BeforeCreate(tx)
}

// Other 返回关系中除 userID 外的另一方
func (f *Friendship) Other(userID uint) uint {
	if f.UserOneID == userID {
		return f.UserTwoID
	}
	return f.UserOneID
}

// Trust 单向信任关系，无申请环节；反向信任是独立记录
type Trust struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GiverID    uint      `gorm:"uniqueIndex:uniq_trust_edge;not null" json:"giverId"`
	Giver      User      `gorm:"foreignKey:GiverID;references:ID;constraint:false" json:"giver,omitempty"`
	ReceiverID uint      `gorm:"uniqueIndex:uniq_trust_edge;not null" json:"receiverId"`
	Receiver   User      `gorm:"foreignKey:ReceiverID;references:ID;constraint:false" json:"receiver,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Trust) TableName() string {
	return "trusts"
}
