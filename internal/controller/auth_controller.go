package controller

import (
	"campus_circle_backend/internal/model"
	"campus_circle_backend/internal/service"
	"campus_circle_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthController 处理注册登录相关的HTTP请求
type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"wangxiaoming"`
	Email    string `json:"email" binding:"required,email" example:"wang@example.com"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary 注册
// @Description 注册新用户，用户名和邮箱均需唯一
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   request body RegisterRequest true "注册请求"
// @Success 201 {object} util.Response{data=model.User} "已创建"
// @Failure 409 {object} util.Response "用户名或邮箱已被使用"
// @Router /api/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := ctrl.AuthService.Register(user); err != nil {
		util.FromError(c, err)
		return
	}

	user.Password = ""
	util.Created(c, user)
}

// Login godoc
// @Summary 登录
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   request body LoginRequest true "登录请求"
// @Success 200 {object} util.Response "成功，data.token 为 JWT"
// @Failure 401 {object} util.Response "凭证无效"
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctrl.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(c)
		return
	}
	util.Success(c, gin.H{"token": token})
}

// GetProfile godoc
// @Summary 获取当前用户信息
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Router /api/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	user := ctrl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}
	user.Password = ""
	util.Success(c, user)
}
