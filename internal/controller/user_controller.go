package controller

import (
	"campus_circle_backend/internal/service"
	"campus_circle_backend/internal/util"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// UserController 处理用户目录和账号相关的HTTP请求
type UserController struct {
	UserService *service.UserService
	Storage     *service.StorageService
}

func NewUserController(userService *service.UserService, storage *service.StorageService) *UserController {
	return &UserController{
		UserService: userService,
		Storage:     storage,
	}
}

// UpdateProfileRequest 更新资料请求
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// GetUser godoc
// @Summary 按用户名查用户
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   username path string true "用户名"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{username} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	user, err := ctrl.UserService.ResolveByName(c.Param("username"))
	if err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, user)
}

// SearchUsers godoc
// @Summary 模糊搜索用户
// @Description 按昵称或邮箱模糊搜索，最多返回20条
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   query query string true "搜索关键字"
// @Success 200 {object} util.Response{data=[]model.User} "成功"
// @Router /api/users [get]
func (ctrl *UserController) SearchUsers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		util.BadRequest(c, "query parameter is required")
		return
	}

	users, err := ctrl.UserService.Search(query)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, users)
}

// UpdateProfile godoc
// @Summary 更新个人资料
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body UpdateProfileRequest true "更新资料请求"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 409 {object} util.Response "用户名已被使用"
// @Router /api/user/profile [put]
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.UserService.UpdateProfile(claims.UserID, req.Name, req.Avatar)
	if err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, user)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description 上传头像图片，存到本地或 MinIO
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "头像图片"
// @Success 200 {object} util.Response "成功，data.url 为头像地址"
// @Router /api/user/avatar/upload [post]
func (ctrl *UserController) UploadAvatar(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "File is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{"image/"})
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	src.Seek(0, 0)

	filename := fmt.Sprintf("avatars/%d_%d%s", claims.UserID, time.Now().Unix(), filepath.Ext(file.Filename))
	url, err := ctrl.Storage.Upload(c.Request.Context(), filename, src, file.Size, mimeType)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	if _, err := ctrl.UserService.UpdateProfile(claims.UserID, "", url); err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, gin.H{"url": url})
}

// DeleteAccount godoc
// @Summary 注销账号
// @Description 删除账号及其全部帖子、申请、好友关系、信任、背书和等级记录
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/users/me [delete]
func (ctrl *UserController) DeleteAccount(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.UserService.DeleteAccount(claims.UserID); err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "账号已注销"})
}
