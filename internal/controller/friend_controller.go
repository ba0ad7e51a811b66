package controller

import (
	"campus_circle_backend/internal/service"
	"campus_circle_backend/internal/util"
	"campus_circle_backend/pkg/monitoring"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FriendController 处理好友申请和好友关系相关的HTTP请求
type FriendController struct {
	Relationships *service.RelationshipService
}

func NewFriendController(relationships *service.RelationshipService) *FriendController {
	return &FriendController{Relationships: relationships}
}

// SendFriendRequestRequest 发送好友申请请求
type SendFriendRequestRequest struct {
	Username string `json:"username" binding:"required" example:"wangxiaoming"`
}

// SendFriendRequest godoc
// @Summary 发送好友申请
// @Description 按用户名向指定用户发送好友申请
// @Tags 好友
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body SendFriendRequestRequest true "发送好友申请请求"
// @Success 201 {object} util.Response{data=model.FriendRequest} "已创建"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 405 {object} util.Response "不能添加自己"
// @Failure 409 {object} util.Response "申请或好友关系已存在"
// @Router /api/friend-requests [post]
func (ctrl *FriendController) SendFriendRequest(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	created, err := ctrl.Relationships.SendRequest(claims.UserID, req.Username)
	if err != nil {
		if util.StatusCode(err) == http.StatusConflict {
			monitoring.RelationConflicts.WithLabelValues("send_request").Inc()
		}
		util.FromError(c, err)
		return
	}
	util.Created(c, created)
}

// GetFriendRequests godoc
// @Summary 获取好友申请列表
// @Description 按方向获取当前用户发出或收到的好友申请
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Param   direction query string false "sent 或 received" default(received)
// @Success 200 {object} util.Response{data=[]model.FriendRequest} "成功"
// @Router /api/friend-requests [get]
func (ctrl *FriendController) GetFriendRequests(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var (
		reqs interface{}
		err  error
	)
	if c.DefaultQuery("direction", "received") == "sent" {
		reqs, err = ctrl.Relationships.SentRequests(claims.UserID)
	} else {
		reqs, err = ctrl.Relationships.ReceivedRequests(claims.UserID)
	}
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, reqs)
}

// CancelFriendRequest godoc
// @Summary 撤回或拒绝好友申请
// @Description 发送方撤回、接收方拒绝，效果相同：删除待处理申请
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "申请ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "申请不存在"
// @Router /api/friend-requests/{id} [delete]
func (ctrl *FriendController) CancelFriendRequest(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.Relationships.CancelRequest(claims.UserID, c.Param("id")); err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "申请已删除"})
}

// WithdrawFriendRequest godoc
// @Summary 按用户名撤回好友申请
// @Description 撤回当前用户发给指定用户的申请；方向精确，收到的申请按ID删除
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Param   username query string true "接收者用户名"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "用户或申请不存在"
// @Router /api/friend-requests [delete]
func (ctrl *FriendController) WithdrawFriendRequest(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	username := c.Query("username")
	if username == "" {
		util.BadRequest(c, "username 不能为空")
		return
	}

	if err := ctrl.Relationships.WithdrawRequest(claims.UserID, username); err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "申请已撤回"})
}

// ConfirmFriendRequest godoc
// @Summary 确认好友申请
// @Description 接收方确认申请，建立好友关系并消费掉申请记录
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "申请ID"
// @Success 201 {object} util.Response{data=model.Friendship} "已建立"
// @Failure 403 {object} util.Response "不是申请的接收方"
// @Failure 404 {object} util.Response "申请不存在"
// @Failure 409 {object} util.Response "已经是好友"
// @Router /api/friend-requests/{id}/confirm [post]
func (ctrl *FriendController) ConfirmFriendRequest(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	friendship, err := ctrl.Relationships.ConfirmRequest(claims.UserID, c.Param("id"))
	if err != nil {
		if util.StatusCode(err) == http.StatusConflict {
			monitoring.RelationConflicts.WithLabelValues("confirm_request").Inc()
		}
		util.FromError(c, err)
		return
	}
	util.Created(c, friendship)
}

// GetFriends godoc
// @Summary 获取好友列表
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Friendship} "成功"
// @Router /api/friends [get]
func (ctrl *FriendController) GetFriends(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	friends, err := ctrl.Relationships.Friends(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, friends)
}

// GetFriendIDs godoc
// @Summary 获取好友ID列表
// @Description 只返回好友用户ID，走缓存，供客户端批量判断好友关系
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]uint} "成功"
// @Router /api/friends/ids [get]
func (ctrl *FriendController) GetFriendIDs(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	ids, err := ctrl.Relationships.FriendIDs(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, ids)
}

// DeleteFriend godoc
// @Summary 删除好友
// @Description 解除与指定用户的好友关系，双方之后可以重新发申请
// @Tags 好友
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path uint true "好友用户ID"
// @Success 200 {object} util.Response "成功"
// @Failure 409 {object} util.Response "好友关系不存在"
// @Router /api/friends/{id} [delete]
func (ctrl *FriendController) DeleteFriend(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	friendID := util.MustParseUint(c.Param("id"))
	if friendID == 0 {
		util.BadRequest(c, "无效的好友ID")
		return
	}

	if err := ctrl.Relationships.RemoveFriend(claims.UserID, friendID); err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "好友已删除"})
}
