package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePair(t *testing.T) {
	low, high := NormalizePair(3, 7)
	assert.Equal(t, uint(3), low)
	assert.Equal(t, uint(7), high)

	// 方向无关：{A,B} 与 {B,A} 规范化到同一个键
	low, high = NormalizePair(7, 3)
	assert.Equal(t, uint(3), low)
	assert.Equal(t, uint(7), high)

	low, high = NormalizePair(5, 5)
	assert.Equal(t, uint(5), low)
	assert.Equal(t, uint(5), high)
}

func TestFriendRequestBeforeCreate(t *testing.T) {
	r := &FriendRequest{SenderID: 9, ReceiverID: 4}
	require.NoError(t, r.BeforeCreate(nil))

	assert.Equal(t, uint(4), r.PairLow)
	assert.Equal(t, uint(9), r.PairHigh)
	assert.NotEmpty(t, r.ID)
}

func TestFriendshipBeforeCreate(t *testing.T) {
	f := &Friendship{UserOneID: 2, UserTwoID: 8}
	require.NoError(t, f.BeforeCreate(nil))

	assert.Equal(t, uint(2), f.PairLow)
	assert.Equal(t, uint(8), f.PairHigh)
	assert.NotEmpty(t, f.ID)
}

func TestFriendshipOther(t *testing.T) {
	f := &Friendship{UserOneID: 2, UserTwoID: 8}
	assert.Equal(t, uint(8), f.Other(2))
	assert.Equal(t, uint(2), f.Other(8))
}
