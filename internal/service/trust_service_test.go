package service

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTrustStore struct {
	trusts []*model.Trust
	seq    uint
}

func (s *fakeTrustStore) Create(t *model.Trust) error {
	for _, e := range s.trusts {
		if e.GiverID == t.GiverID && e.ReceiverID == t.ReceiverID {
			return gorm.ErrDuplicatedKey
		}
	}
	s.seq++
	t.ID = s.seq
	t.CreatedAt = time.Unix(int64(s.seq), 0)
	s.trusts = append(s.trusts, t)
	return nil
}

func (s *fakeTrustStore) Find(giverID, receiverID uint) (*model.Trust, error) {
	for _, e := range s.trusts {
		if e.GiverID == giverID && e.ReceiverID == receiverID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeTrustStore) ListGivenBy(userID uint) ([]model.Trust, error) {
	var out []model.Trust
	for _, e := range s.trusts {
		if e.GiverID == userID {
			out = append(out, *e)
		}
	}
	sortNewestFirst(out, func(e model.Trust) time.Time { return e.CreatedAt })
	return out, nil
}

func (s *fakeTrustStore) ListReceivedBy(userID uint) ([]model.Trust, error) {
	var out []model.Trust
	for _, e := range s.trusts {
		if e.ReceiverID == userID {
			out = append(out, *e)
		}
	}
	sortNewestFirst(out, func(e model.Trust) time.Time { return e.CreatedAt })
	return out, nil
}

func (s *fakeTrustStore) DeleteOne(giverID, receiverID uint) (bool, error) {
	for i, e := range s.trusts {
		if e.GiverID == giverID && e.ReceiverID == receiverID {
			s.trusts = append(s.trusts[:i], s.trusts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeTrustStore) DeleteAllInvolving(userID uint) error {
	var kept []*model.Trust
	for _, e := range s.trusts {
		if e.GiverID != userID && e.ReceiverID != userID {
			kept = append(kept, e)
		}
	}
	s.trusts = kept
	return nil
}

func newTestTrustService() (*TrustService, *fakeTrustStore) {
	users := &fakeUserDirectory{users: []*model.User{
		{BaseModel: model.BaseModel{ID: 1}, Name: "alice"},
		{BaseModel: model.BaseModel{ID: 2}, Name: "bob"},
		{BaseModel: model.BaseModel{ID: 3}, Name: "carol"},
	}}
	trusts := &fakeTrustStore{}
	return NewTrustService(trusts, users), trusts
}

func TestEstablishTrust(t *testing.T) {
	svc, trusts := newTestTrustService()

	tr, err := svc.Establish(1, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint(1), tr.GiverID)
	assert.Equal(t, uint(2), tr.ReceiverID)
	assert.Len(t, trusts.trusts, 1)
}

func TestEstablishTrustGuards(t *testing.T) {
	svc, _ := newTestTrustService()

	_, err := svc.Establish(1, "nobody")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	_, err = svc.Establish(1, "alice")
	assert.ErrorIs(t, err, util.ErrSelfRelation)

	_, err = svc.Establish(1, "bob")
	require.NoError(t, err)
	_, err = svc.Establish(1, "bob")
	assert.ErrorIs(t, err, util.ErrTrustExists)
}

// 信任是有向的：A→B 不影响 B→A 单独建立
func TestTrustIsDirectional(t *testing.T) {
	svc, trusts := newTestTrustService()

	_, err := svc.Establish(1, "bob")
	require.NoError(t, err)

	_, err = svc.Establish(2, "alice")
	require.NoError(t, err)
	assert.Len(t, trusts.trusts, 2)

	// 撤销一个方向不影响另一个
	require.NoError(t, svc.Revoke(1, "bob"))
	received, err := svc.ReceivedBy(1)
	require.NoError(t, err)
	assert.Len(t, received, 1)
}

func TestRevokeTrustAbsent(t *testing.T) {
	svc, _ := newTestTrustService()

	err := svc.Revoke(1, "bob")
	assert.ErrorIs(t, err, util.ErrTrustNotFound)

	err = svc.Revoke(1, "nobody")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestTrustListingsNewestFirst(t *testing.T) {
	svc, _ := newTestTrustService()

	_, err := svc.Establish(1, "bob")
	require.NoError(t, err)
	_, err = svc.Establish(1, "carol")
	require.NoError(t, err)

	given, err := svc.GivenBy(1)
	require.NoError(t, err)
	require.Len(t, given, 2)
	// 后建立的排在前面
	assert.Equal(t, uint(3), given[0].ReceiverID)
	assert.Equal(t, uint(2), given[1].ReceiverID)
	assert.True(t, given[0].CreatedAt.After(given[1].CreatedAt))
}

func TestPurgeUserTrusts(t *testing.T) {
	svc, trusts := newTestTrustService()

	_, err := svc.Establish(1, "bob")
	require.NoError(t, err)
	_, err = svc.Establish(2, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.PurgeUser(1))
	assert.Empty(t, trusts.trusts)
}
