package service

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/util"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 内存版存储，行为对齐 repository 包：未命中返回 gorm.ErrRecordNotFound，
// 规范化对冲突返回 gorm.ErrDuplicatedKey

type fakeUserDirectory struct {
	users []*model.User
}

func (d *fakeUserDirectory) FindByID(id uint) (*model.User, error) {
	for _, u := range d.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (d *fakeUserDirectory) FindByName(name string) (*model.User, error) {
	for _, u := range d.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeRequestStore struct {
	requests []*model.FriendRequest
	seq      int
	findCall int
	findMiss bool // 模拟并发：守卫查询看不到已落库的记录
}

func (s *fakeRequestStore) Create(req *model.FriendRequest) error {
	low, high := model.NormalizePair(req.SenderID, req.ReceiverID)
	for _, r := range s.requests {
		if r.PairLow == low && r.PairHigh == high {
			return gorm.ErrDuplicatedKey
		}
	}
	s.seq++
	req.ID = fmt.Sprintf("req-%d", s.seq)
	req.CreatedAt = time.Unix(int64(s.seq), 0)
	req.PairLow, req.PairHigh = low, high
	s.requests = append(s.requests, req)
	return nil
}

func (s *fakeRequestStore) FindExact(senderID, receiverID uint) (*model.FriendRequest, error) {
	for _, r := range s.requests {
		if r.SenderID == senderID && r.ReceiverID == receiverID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeRequestStore) FindByID(id string) (*model.FriendRequest, error) {
	for _, r := range s.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeRequestStore) FindEitherDirection(userA, userB uint) (*model.FriendRequest, error) {
	s.findCall++
	if s.findMiss {
		return nil, gorm.ErrRecordNotFound
	}
	low, high := model.NormalizePair(userA, userB)
	for _, r := range s.requests {
		if r.PairLow == low && r.PairHigh == high {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeRequestStore) ListSentBy(userID uint) ([]model.FriendRequest, error) {
	var out []model.FriendRequest
	for _, r := range s.requests {
		if r.SenderID == userID {
			out = append(out, *r)
		}
	}
	sortNewestFirst(out, func(r model.FriendRequest) time.Time { return r.CreatedAt })
	return out, nil
}

func (s *fakeRequestStore) ListReceivedBy(userID uint) ([]model.FriendRequest, error) {
	var out []model.FriendRequest
	for _, r := range s.requests {
		if r.ReceiverID == userID {
			out = append(out, *r)
		}
	}
	sortNewestFirst(out, func(r model.FriendRequest) time.Time { return r.CreatedAt })
	return out, nil
}

// 列表行为对齐真实仓库的 ORDER BY created_at DESC
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func (s *fakeRequestStore) DeleteByID(id string) (bool, error) {
	for i, r := range s.requests {
		if r.ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeRequestStore) DeleteAllInvolving(userID uint) error {
	var kept []*model.FriendRequest
	for _, r := range s.requests {
		if r.SenderID != userID && r.ReceiverID != userID {
			kept = append(kept, r)
		}
	}
	s.requests = kept
	return nil
}

type fakeFriendshipStore struct {
	friendships []*model.Friendship
	seq         int
	findCall    int
}

func (s *fakeFriendshipStore) Create(f *model.Friendship) error {
	low, high := model.NormalizePair(f.UserOneID, f.UserTwoID)
	for _, e := range s.friendships {
		if e.PairLow == low && e.PairHigh == high {
			return gorm.ErrDuplicatedKey
		}
	}
	s.seq++
	f.ID = fmt.Sprintf("fr-%d", s.seq)
	f.PairLow, f.PairHigh = low, high
	s.friendships = append(s.friendships, f)
	return nil
}

func (s *fakeFriendshipStore) FindEitherDirection(userA, userB uint) (*model.Friendship, error) {
	s.findCall++
	low, high := model.NormalizePair(userA, userB)
	for _, f := range s.friendships {
		if f.PairLow == low && f.PairHigh == high {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeFriendshipStore) ListInvolving(userID uint) ([]model.Friendship, error) {
	var out []model.Friendship
	for _, f := range s.friendships {
		if f.UserOneID == userID || f.UserTwoID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (s *fakeFriendshipStore) GetFriendIDsCached(userID uint) ([]uint, error) {
	var out []uint
	for _, f := range s.friendships {
		if f.UserOneID == userID || f.UserTwoID == userID {
			out = append(out, f.Other(userID))
		}
	}
	return out, nil
}

func (s *fakeFriendshipStore) DeleteByID(id string) (bool, error) {
	for i, f := range s.friendships {
		if f.ID == id {
			s.friendships = append(s.friendships[:i], s.friendships[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFriendshipStore) DeleteAllInvolving(userID uint) error {
	var kept []*model.Friendship
	for _, f := range s.friendships {
		if f.UserOneID != userID && f.UserTwoID != userID {
			kept = append(kept, f)
		}
	}
	s.friendships = kept
	return nil
}

func newTestRelationshipService() (*RelationshipService, *fakeRequestStore, *fakeFriendshipStore) {
	users := &fakeUserDirectory{users: []*model.User{
		{BaseModel: model.BaseModel{ID: 1}, Name: "alice"},
		{BaseModel: model.BaseModel{ID: 2}, Name: "bob"},
		{BaseModel: model.BaseModel{ID: 3}, Name: "carol"},
	}}
	requests := &fakeRequestStore{}
	friendships := &fakeFriendshipStore{}
	return NewRelationshipService(requests, friendships, users), requests, friendships
}

func TestSendRequest(t *testing.T) {
	svc, requests, _ := newTestRelationshipService()

	req, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint(1), req.SenderID)
	assert.Equal(t, uint(2), req.ReceiverID)
	assert.NotEmpty(t, req.ID)
	assert.Len(t, requests.requests, 1)
}

func TestSendRequestUnknownReceiver(t *testing.T) {
	svc, _, _ := newTestRelationshipService()

	_, err := svc.SendRequest(1, "nobody")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestSendRequestToSelf(t *testing.T) {
	svc, requests, friendships := newTestRelationshipService()

	_, err := svc.SendRequest(1, "alice")
	assert.ErrorIs(t, err, util.ErrSelfRelation)

	// 自我检查要在存储查询之前短路
	assert.Zero(t, requests.findCall)
	assert.Zero(t, friendships.findCall)
}

func TestSendRequestPendingEitherDirection(t *testing.T) {
	svc, _, _ := newTestRelationshipService()

	_, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)

	// 同方向重复
	_, err = svc.SendRequest(1, "bob")
	assert.ErrorIs(t, err, util.ErrRequestExists)

	// 反方向也算同一对上的待处理申请
	_, err = svc.SendRequest(2, "alice")
	assert.ErrorIs(t, err, util.ErrRequestExists)
}

func TestSendRequestAlreadyFriends(t *testing.T) {
	svc, _, friendships := newTestRelationshipService()

	require.NoError(t, friendships.Create(&model.Friendship{UserOneID: 2, UserTwoID: 1}))

	_, err := svc.SendRequest(1, "bob")
	assert.ErrorIs(t, err, util.ErrAlreadyFriends)
}

func TestSendRequestLosesCreateRace(t *testing.T) {
	svc, requests, _ := newTestRelationshipService()

	// 守卫通过后、写入前，对方的申请先落库；
	// 唯一索引冲突要折算成与守卫相同的业务错误
	requests.requests = append(requests.requests, &model.FriendRequest{
		UUIDBase: model.UUIDBase{ID: "req-race"}, SenderID: 2, ReceiverID: 1, PairLow: 1, PairHigh: 2,
	})
	requests.findMiss = true

	_, err := svc.SendRequest(1, "bob")
	assert.ErrorIs(t, err, util.ErrRequestExists)
}

func TestCancelRequest(t *testing.T) {
	svc, requests, _ := newTestRelationshipService()

	req, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)

	// 无关用户不能动别人的申请
	err = svc.CancelRequest(3, req.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
	assert.Len(t, requests.requests, 1)

	// 发送方撤回
	require.NoError(t, svc.CancelRequest(1, req.ID))
	assert.Empty(t, requests.requests)

	err = svc.CancelRequest(1, req.ID)
	assert.ErrorIs(t, err, util.ErrRequestNotFound)
}

func TestCancelRequestAsReceiver(t *testing.T) {
	svc, requests, _ := newTestRelationshipService()

	req, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)

	// 接收方拒绝与发送方撤回语义相同
	require.NoError(t, svc.CancelRequest(2, req.ID))
	assert.Empty(t, requests.requests)
}

func TestWithdrawRequestByUsername(t *testing.T) {
	svc, requests, _ := newTestRelationshipService()

	_, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)

	// 方向精确：接收方不能用撤回路径处理收到的申请
	err = svc.WithdrawRequest(2, "alice")
	assert.ErrorIs(t, err, util.ErrRequestNotFound)
	assert.Len(t, requests.requests, 1)

	require.NoError(t, svc.WithdrawRequest(1, "bob"))
	assert.Empty(t, requests.requests)

	assert.ErrorIs(t, svc.WithdrawRequest(1, "bob"), util.ErrRequestNotFound)
	assert.ErrorIs(t, svc.WithdrawRequest(1, "nobody"), util.ErrUserNotFound)
}

func TestConfirmRequest(t *testing.T) {
	svc, requests, friendships := newTestRelationshipService()

	req, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)

	// 只有接收方能确认
	_, err = svc.ConfirmRequest(1, req.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	f, err := svc.ConfirmRequest(2, req.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), f.UserOneID)
	assert.Equal(t, uint(2), f.UserTwoID)

	// 确认时申请被消费删除
	assert.Empty(t, requests.requests)
	assert.Len(t, friendships.friendships, 1)
}

func TestConfirmRequestNotFound(t *testing.T) {
	svc, _, _ := newTestRelationshipService()

	_, err := svc.ConfirmRequest(2, "missing")
	assert.ErrorIs(t, err, util.ErrRequestNotFound)
}

func TestRemoveFriend(t *testing.T) {
	svc, _, friendships := newTestRelationshipService()

	require.NoError(t, friendships.Create(&model.Friendship{UserOneID: 1, UserTwoID: 2}))

	// 任一方都可以解除，参数顺序无关
	require.NoError(t, svc.RemoveFriend(2, 1))
	assert.Empty(t, friendships.friendships)

	err := svc.RemoveFriend(2, 1)
	assert.ErrorIs(t, err, util.ErrFriendshipNotFound)
}

// 完整生命周期：申请 → 确认 → 重复申请被拒 → 解除 → 可重新申请
func TestRelationshipLifecycle(t *testing.T) {
	svc, requests, friendships := newTestRelationshipService()

	req, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)

	_, err = svc.ConfirmRequest(2, req.ID)
	require.NoError(t, err)

	// 已是好友后双方都不能再发申请
	_, err = svc.SendRequest(1, "bob")
	assert.ErrorIs(t, err, util.ErrAlreadyFriends)
	_, err = svc.SendRequest(2, "alice")
	assert.ErrorIs(t, err, util.ErrAlreadyFriends)

	require.NoError(t, svc.RemoveFriend(1, 2))

	// 回到初始状态，可以重新走一遍
	req2, err := svc.SendRequest(2, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint(2), req2.SenderID)

	assert.Len(t, requests.requests, 1)
	assert.Empty(t, friendships.friendships)
}

func TestFriendQueries(t *testing.T) {
	svc, _, friendships := newTestRelationshipService()

	req, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)
	_, err = svc.SendRequest(3, "alice")
	require.NoError(t, err)

	sent, err := svc.SentRequests(1)
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	received, err := svc.ReceivedRequests(1)
	require.NoError(t, err)
	assert.Len(t, received, 1)

	_, err = svc.ConfirmRequest(2, req.ID)
	require.NoError(t, err)

	friends, err := svc.Friends(2)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, uint(1), friends[0].Other(2))

	ids, err := svc.FriendIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids)
	assert.Len(t, friendships.friendships, 1)
}

func TestRequestListingsNewestFirst(t *testing.T) {
	svc, _, _ := newTestRelationshipService()

	_, err := svc.SendRequest(1, "bob")
	require.NoError(t, err)
	_, err = svc.SendRequest(1, "carol")
	require.NoError(t, err)

	sent, err := svc.SentRequests(1)
	require.NoError(t, err)
	require.Len(t, sent, 2)
	// 后发出的排在前面
	assert.Equal(t, uint(3), sent[0].ReceiverID)
	assert.Equal(t, uint(2), sent[1].ReceiverID)
	assert.True(t, sent[0].CreatedAt.After(sent[1].CreatedAt))
}

func TestPurgeUserRelationships(t *testing.T) {
	svc, requests, friendships := newTestRelationshipService()

	_, err := svc.SendRequest(3, "alice")
	require.NoError(t, err)
	require.NoError(t, friendships.Create(&model.Friendship{UserOneID: 1, UserTwoID: 2}))
	require.NoError(t, friendships.Create(&model.Friendship{UserOneID: 2, UserTwoID: 3}))

	require.NoError(t, svc.PurgeUser(1))

	// 用户1两个槽位上的记录全部清掉，其余保留
	assert.Empty(t, requests.requests)
	require.Len(t, friendships.friendships, 1)
	assert.Equal(t, uint(2), friendships.friendships[0].UserOneID)
}
