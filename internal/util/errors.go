package util

import (
	"errors"
	"net/http"
)

// ErrorKind 业务错误分类，决定 HTTP 状态码
type ErrorKind int

const (
	KindNotFound     ErrorKind = iota // 引用的用户/申请/关系不存在
	KindSelfRelation                  // 操作者和目标是同一人
	KindConflict                      // 与当前状态冲突：重复申请、已是好友、无可删除记录
	KindValidation                    // 请求参数不合法
	KindForbidden                     // 无权操作该实体
)

// AppError 带分类的业务错误；守卫失败时返回，进程不因单个坏请求崩溃
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

var (
	ErrUserNotFound       = NewAppError(KindNotFound, "用户不存在")
	ErrRequestNotFound    = NewAppError(KindNotFound, "好友申请不存在")
	ErrPostNotFound       = NewAppError(KindNotFound, "帖子不存在")
	ErrSelfRelation       = NewAppError(KindSelfRelation, "不能和自己建立关系")
	ErrRequestExists      = NewAppError(KindConflict, "双方之间已有待处理的好友申请")
	ErrAlreadyFriends     = NewAppError(KindConflict, "已经是好友了")
	ErrFriendshipNotFound = NewAppError(KindConflict, "好友关系不存在")
	ErrTrustExists        = NewAppError(KindConflict, "已经信任该用户")
	ErrTrustNotFound      = NewAppError(KindConflict, "信任关系不存在")
	ErrEndorseExists      = NewAppError(KindConflict, "已经背书过该帖子")
	ErrEndorseNotFound    = NewAppError(KindConflict, "背书不存在")
	ErrEmailRegistered    = NewAppError(KindConflict, "该邮箱已被注册")
	ErrNameRegistered     = NewAppError(KindConflict, "该用户名已被使用")
	ErrPermissionDenied   = NewAppError(KindForbidden, "permission denied")
	ErrEndorseNotAllowed  = NewAppError(KindForbidden, "等级不足，还不能背书")
)

// StatusCode 把错误分类映射到 HTTP 状态码；未知错误按 500 处理
func StatusCode(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindSelfRelation:
		return http.StatusMethodNotAllowed
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
