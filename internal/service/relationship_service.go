package service

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// 关系编排只依赖这几个窄接口，守卫逻辑可以不连库测试；
// repository 包里的具体实现直接满足它们
type friendRequestStore interface {
	Create(req *model.FriendRequest) error
	FindByID(id string) (*model.FriendRequest, error)
	FindExact(senderID, receiverID uint) (*model.FriendRequest, error)
	FindEitherDirection(userA, userB uint) (*model.FriendRequest, error)
	ListSentBy(userID uint) ([]model.FriendRequest, error)
	ListReceivedBy(userID uint) ([]model.FriendRequest, error)
	DeleteByID(id string) (bool, error)
	DeleteAllInvolving(userID uint) error
}

type friendshipStore interface {
	Create(f *model.Friendship) error
	FindEitherDirection(userA, userB uint) (*model.Friendship, error)
	ListInvolving(userID uint) ([]model.Friendship, error)
	GetFriendIDsCached(userID uint) ([]uint, error)
	DeleteByID(id string) (bool, error)
	DeleteAllInvolving(userID uint) error
}

type userDirectory interface {
	FindByID(id uint) (*model.User, error)
	FindByName(name string) (*model.User, error)
}

// RelationshipService 好友申请/好友关系的状态机
// 每个无序对 {A,B} 走 NONE → REQUESTED → ESTABLISHED，
// 取消/删除回到 NONE，不经过 NONE 不能重新进入任何状态
type RelationshipService struct {
	Requests    friendRequestStore
	Friendships friendshipStore
	Users       userDirectory
}

func NewRelationshipService(requests friendRequestStore, friendships friendshipStore, users userDirectory) *RelationshipService {
	return &RelationshipService{
		Requests:    requests,
		Friendships: friendships,
		Users:       users,
	}
}

// SendRequest 发起好友申请，NONE → REQUESTED
// 守卫按固定顺序短路：解析用户名 → 自我检查 → 已有申请（双向）→ 已是好友
// 自我检查不查库，排在两个存储查询之前
func (s *RelationshipService) SendRequest(senderID uint, receiverName string) (*model.FriendRequest, error) {
	receiver, err := s.Users.FindByName(receiverName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if receiver.ID == senderID {
		return nil, util.ErrSelfRelation
	}

	if _, err := s.Requests.FindEitherDirection(senderID, receiver.ID); err == nil {
		return nil, util.ErrRequestExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.Friendships.FindEitherDirection(senderID, receiver.ID); err == nil {
		return nil, util.ErrAlreadyFriends
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	req := &model.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
	}
	if err := s.Requests.Create(req); err != nil {
		// 守卫通过后另一条并发申请先落库：规范化对上的唯一索引
		// 把输掉竞争的一方兜回与守卫相同的冲突错误
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrRequestExists
		}
		return nil, err
	}
	return req, nil
}

// CancelRequest 撤回或拒绝申请，REQUESTED → NONE
// 发送方撤回和接收方拒绝语义相同，都只是删掉待处理申请
func (s *RelationshipService) CancelRequest(actorID uint, requestID string) error {
	req, err := s.Requests.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRequestNotFound
		}
		return err
	}

	if req.SenderID != actorID && req.ReceiverID != actorID {
		return util.ErrPermissionDenied
	}

	deleted, err := s.Requests.DeleteByID(requestID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrRequestNotFound
	}
	return nil
}

// WithdrawRequest 发送方按接收者用户名撤回自己发出的申请
// 只匹配精确方向：收到的申请不走这里，由 CancelRequest 按 ID 拒绝
func (s *RelationshipService) WithdrawRequest(senderID uint, receiverName string) error {
	receiver, err := s.Users.FindByName(receiverName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	req, err := s.Requests.FindExact(senderID, receiver.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRequestNotFound
		}
		return err
	}

	deleted, err := s.Requests.DeleteByID(req.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrRequestNotFound
	}
	return nil
}

// ConfirmRequest 接收方确认申请，REQUESTED → ESTABLISHED
// 申请在确认时被消费删除，不留存量记录
func (s *RelationshipService) ConfirmRequest(actorID uint, requestID string) (*model.Friendship, error) {
	req, err := s.Requests.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRequestNotFound
		}
		return nil, err
	}

	if req.ReceiverID != actorID {
		return nil, util.ErrPermissionDenied
	}

	if _, err := s.Friendships.FindEitherDirection(req.SenderID, req.ReceiverID); err == nil {
		return nil, util.ErrAlreadyFriends
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	friendship := &model.Friendship{
		UserOneID: req.SenderID,
		UserTwoID: req.ReceiverID,
	}
	if err := s.Friendships.Create(friendship); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyFriends
		}
		return nil, err
	}

	if _, err := s.Requests.DeleteByID(req.ID); err != nil {
		return nil, err
	}
	return friendship, nil
}

// RemoveFriend 删除好友关系，ESTABLISHED → NONE
// 之后双方可以重新发申请，状态机完整回到起点
func (s *RelationshipService) RemoveFriend(actorID, otherID uint) error {
	f, err := s.Friendships.FindEitherDirection(actorID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrFriendshipNotFound
		}
		return err
	}

	deleted, err := s.Friendships.DeleteByID(f.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrFriendshipNotFound
	}
	return nil
}

func (s *RelationshipService) SentRequests(userID uint) ([]model.FriendRequest, error) {
	return s.Requests.ListSentBy(userID)
}

func (s *RelationshipService) ReceivedRequests(userID uint) ([]model.FriendRequest, error) {
	return s.Requests.ListReceivedBy(userID)
}

func (s *RelationshipService) Friends(userID uint) ([]model.Friendship, error) {
	return s.Friendships.ListInvolving(userID)
}

func (s *RelationshipService) FriendIDs(userID uint) ([]uint, error) {
	return s.Friendships.GetFriendIDsCached(userID)
}

// PurgeUser 注销账号时清掉用户两个槽位上的所有申请和好友关系
func (s *RelationshipService) PurgeUser(userID uint) error {
	if err := s.Requests.DeleteAllInvolving(userID); err != nil {
		return err
	}
	return s.Friendships.DeleteAllInvolving(userID)
}
