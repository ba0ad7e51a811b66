package controller

import (
	"campus_circle_backend/internal/service"
	"campus_circle_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// LevelController 处理等级和权限相关的HTTP请求
type LevelController struct {
	Levels *service.LevelService
}

func NewLevelController(levels *service.LevelService) *LevelController {
	return &LevelController{Levels: levels}
}

// GetMyLevel godoc
// @Summary 获取当前用户等级
// @Description 等级和权限由发帖数确定性推导：1 帖可点赞，2 帖可背书
// @Tags 等级
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Level} "成功"
// @Router /api/level [get]
func (ctrl *LevelController) GetMyLevel(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	level, err := ctrl.Levels.GetForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, level)
}
