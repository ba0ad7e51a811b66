package controller

import (
	"campus_circle_backend/internal/service"
	"campus_circle_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TrustController 处理单向信任关系相关的HTTP请求
type TrustController struct {
	Trusts *service.TrustService
}

func NewTrustController(trusts *service.TrustService) *TrustController {
	return &TrustController{Trusts: trusts}
}

// EstablishTrustRequest 建立信任请求
type EstablishTrustRequest struct {
	Username string `json:"username" binding:"required" example:"wangxiaoming"`
}

// EstablishTrust godoc
// @Summary 信任用户
// @Description 对指定用户建立单向信任，无需对方确认
// @Tags 信任
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body EstablishTrustRequest true "建立信任请求"
// @Success 201 {object} util.Response{data=model.Trust} "已创建"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 405 {object} util.Response "不能信任自己"
// @Failure 409 {object} util.Response "已经信任该用户"
// @Router /api/trusts [post]
func (ctrl *TrustController) EstablishTrust(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req EstablishTrustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	trust, err := ctrl.Trusts.Establish(claims.UserID, req.Username)
	if err != nil {
		util.FromError(c, err)
		return
	}
	util.Created(c, trust)
}

// RevokeTrust godoc
// @Summary 取消信任
// @Tags 信任
// @Produce  json
// @Security ApiKeyAuth
// @Param   username path string true "被信任用户名"
// @Success 200 {object} util.Response "成功"
// @Failure 409 {object} util.Response "信任关系不存在"
// @Router /api/trusts/{username} [delete]
func (ctrl *TrustController) RevokeTrust(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.Trusts.Revoke(claims.UserID, c.Param("username")); err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "已取消信任"})
}

// GetTrusts godoc
// @Summary 获取信任列表
// @Description 按方向获取当前用户给出或收到的信任
// @Tags 信任
// @Produce  json
// @Security ApiKeyAuth
// @Param   direction query string false "given 或 received" default(given)
// @Success 200 {object} util.Response{data=[]model.Trust} "成功"
// @Router /api/trusts [get]
func (ctrl *TrustController) GetTrusts(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var (
		trusts interface{}
		err    error
	)
	if c.DefaultQuery("direction", "given") == "received" {
		trusts, err = ctrl.Trusts.ReceivedBy(claims.UserID)
	} else {
		trusts, err = ctrl.Trusts.GivenBy(claims.UserID)
	}
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, trusts)
}
