package service

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEndorsementStore struct {
	endorsements []*model.Endorsement
	seq          uint
}

func (s *fakeEndorsementStore) Create(e *model.Endorsement) error {
	for _, x := range s.endorsements {
		if x.GiverID == e.GiverID && x.PostID == e.PostID {
			return gorm.ErrDuplicatedKey
		}
	}
	s.seq++
	e.ID = s.seq
	s.endorsements = append(s.endorsements, e)
	return nil
}

func (s *fakeEndorsementStore) Find(giverID, postID uint) (*model.Endorsement, error) {
	for _, x := range s.endorsements {
		if x.GiverID == giverID && x.PostID == postID {
			return x, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeEndorsementStore) ListByPost(postID uint) ([]model.Endorsement, error) {
	var out []model.Endorsement
	for _, x := range s.endorsements {
		if x.PostID == postID {
			out = append(out, *x)
		}
	}
	return out, nil
}

func (s *fakeEndorsementStore) CountByPost(postID uint) (int64, error) {
	var n int64
	for _, x := range s.endorsements {
		if x.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (s *fakeEndorsementStore) Delete(giverID, postID uint) (bool, error) {
	for i, x := range s.endorsements {
		if x.GiverID == giverID && x.PostID == postID {
			s.endorsements = append(s.endorsements[:i], s.endorsements[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeEndorsementStore) DeleteAllByGiver(giverID uint) error {
	var kept []*model.Endorsement
	for _, x := range s.endorsements {
		if x.GiverID != giverID {
			kept = append(kept, x)
		}
	}
	s.endorsements = kept
	return nil
}

type fakePostReader struct {
	posts map[uint]*model.Post
}

func (s *fakePostReader) FindByID(id uint) (*model.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

// 用户1发了2帖（可背书），用户2发了1帖（不可背书），帖子10的作者是用户2
func newTestEndorseService() (*EndorseService, *fakeEndorsementStore) {
	store := &fakeEndorsementStore{}
	posts := &fakePostReader{posts: map[uint]*model.Post{
		10: {BaseModel: model.BaseModel{ID: 10}, AuthorID: 2, Content: "hello"},
		11: {BaseModel: model.BaseModel{ID: 11}, AuthorID: 1, Content: "mine"},
	}}
	levels := NewLevelService(newFakeLevelStore(), &fakePostCounter{counts: map[uint]int64{1: 2, 2: 1}})
	return NewEndorseService(store, posts, levels), store
}

func TestEndorse(t *testing.T) {
	svc, store := newTestEndorseService()

	e, err := svc.Endorse(1, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(1), e.GiverID)
	assert.Equal(t, uint(10), e.PostID)
	assert.Len(t, store.endorsements, 1)

	// 重复背书同一帖子
	_, err = svc.Endorse(1, 10)
	assert.ErrorIs(t, err, util.ErrEndorseExists)
}

func TestEndorseRequiresPrivilege(t *testing.T) {
	svc, _ := newTestEndorseService()

	// 用户2只有1帖，未达到背书等级
	_, err := svc.Endorse(2, 11)
	assert.ErrorIs(t, err, util.ErrEndorseNotAllowed)
}

func TestEndorseOwnPost(t *testing.T) {
	svc, _ := newTestEndorseService()

	_, err := svc.Endorse(1, 11)
	assert.ErrorIs(t, err, util.ErrSelfRelation)
}

func TestEndorseMissingPost(t *testing.T) {
	svc, _ := newTestEndorseService()

	_, err := svc.Endorse(1, 999)
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}

func TestUnendorse(t *testing.T) {
	svc, store := newTestEndorseService()

	_, err := svc.Endorse(1, 10)
	require.NoError(t, err)

	require.NoError(t, svc.Unendorse(1, 10))
	assert.Empty(t, store.endorsements)

	err = svc.Unendorse(1, 10)
	assert.ErrorIs(t, err, util.ErrEndorseNotFound)
}

func TestListForPost(t *testing.T) {
	svc, _ := newTestEndorseService()

	_, err := svc.Endorse(1, 10)
	require.NoError(t, err)

	list, err := svc.ListForPost(10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(1), list[0].GiverID)

	count, err := svc.CountForPost(10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
