package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrUserNotFound))
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrRequestNotFound))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusCode(ErrSelfRelation))
	assert.Equal(t, http.StatusConflict, StatusCode(ErrRequestExists))
	assert.Equal(t, http.StatusConflict, StatusCode(ErrAlreadyFriends))
	// 删除不存在的好友关系按状态冲突处理，不按404
	assert.Equal(t, http.StatusConflict, StatusCode(ErrFriendshipNotFound))
	assert.Equal(t, http.StatusForbidden, StatusCode(ErrPermissionDenied))
	assert.Equal(t, http.StatusForbidden, StatusCode(ErrEndorseNotAllowed))
	assert.Equal(t, http.StatusBadRequest, StatusCode(NewAppError(KindValidation, "bad input")))
}

func TestStatusCodeUnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("db down")))
}

func TestStatusCodeWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("send request: %w", ErrSelfRelation)
	assert.Equal(t, http.StatusMethodNotAllowed, StatusCode(wrapped))
	assert.ErrorIs(t, wrapped, ErrSelfRelation)
}
