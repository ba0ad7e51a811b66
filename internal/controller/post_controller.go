package controller

import (
	"campus_circle_backend/internal/service"
	"campus_circle_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PostController 处理帖子和背书相关的HTTP请求
type PostController struct {
	Posts        *service.PostService
	Endorsements *service.EndorseService
}

func NewPostController(posts *service.PostService, endorsements *service.EndorseService) *PostController {
	return &PostController{Posts: posts, Endorsements: endorsements}
}

// CreatePostRequest 发帖请求
type CreatePostRequest struct {
	Content string `json:"content" binding:"required" example:"今天学会了二分查找"`
}

// UpdatePostRequest 改帖请求
type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost godoc
// @Summary 发布帖子
// @Description 发布帖子；发帖数影响等级和权限
// @Tags 帖子
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body CreatePostRequest true "发帖请求"
// @Success 201 {object} util.Response{data=model.Post} "已创建"
// @Router /api/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	post, err := ctrl.Posts.CreatePost(claims.UserID, req.Content)
	if err != nil {
		util.FromError(c, err)
		return
	}
	util.Created(c, post)
}

// GetPosts godoc
// @Summary 获取帖子列表
// @Tags 帖子
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页条数" default(20)
// @Param   author query int false "按作者ID过滤"
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]model.Post}} "成功"
// @Router /api/posts [get]
func (ctrl *PostController) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	authorID := util.MustParseUint(c.Query("author"))

	posts, total, err := ctrl.Posts.GetPosts(page, limit, authorID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetPost godoc
// @Summary 获取帖子详情
// @Tags 帖子
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path uint true "帖子ID"
// @Success 200 {object} util.Response{data=model.Post} "成功"
// @Failure 404 {object} util.Response "帖子不存在"
// @Router /api/posts/{id} [get]
func (ctrl *PostController) GetPost(c *gin.Context) {
	post, err := ctrl.Posts.GetPost(util.MustParseUint(c.Param("id")))
	if err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, post)
}

// UpdatePost godoc
// @Summary 修改帖子
// @Tags 帖子
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path uint true "帖子ID"
// @Param   request body UpdatePostRequest true "改帖请求"
// @Success 200 {object} util.Response{data=model.Post} "成功"
// @Failure 403 {object} util.Response "不是作者"
// @Failure 404 {object} util.Response "帖子不存在"
// @Router /api/posts/{id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	post, err := ctrl.Posts.UpdatePost(claims.UserID, util.MustParseUint(c.Param("id")), req.Content)
	if err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, post)
}

// DeletePost godoc
// @Summary 删除帖子
// @Description 删除帖子及其全部背书；发帖数变化会重算等级
// @Tags 帖子
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path uint true "帖子ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "不是作者"
// @Failure 404 {object} util.Response "帖子不存在"
// @Router /api/posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.Posts.DeletePost(claims.UserID, util.MustParseUint(c.Param("id"))); err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "帖子已删除"})
}

// EndorsePost godoc
// @Summary 背书帖子
// @Description 需要 CanEndorse 权限（发帖数 ≥ 2）
// @Tags 帖子
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path uint true "帖子ID"
// @Success 201 {object} util.Response{data=model.Endorsement} "已创建"
// @Failure 403 {object} util.Response "等级不足"
// @Failure 404 {object} util.Response "帖子不存在"
// @Failure 409 {object} util.Response "已背书过"
// @Router /api/posts/{id}/endorsements [post]
func (ctrl *PostController) EndorsePost(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	e, err := ctrl.Endorsements.Endorse(claims.UserID, util.MustParseUint(c.Param("id")))
	if err != nil {
		util.FromError(c, err)
		return
	}
	util.Created(c, e)
}

// UnendorsePost godoc
// @Summary 取消背书
// @Tags 帖子
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path uint true "帖子ID"
// @Success 200 {object} util.Response "成功"
// @Failure 409 {object} util.Response "背书不存在"
// @Router /api/posts/{id}/endorsements [delete]
func (ctrl *PostController) UnendorsePost(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctrl.Endorsements.Unendorse(claims.UserID, util.MustParseUint(c.Param("id"))); err != nil {
		util.FromError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "已取消背书"})
}

// GetEndorsements godoc
// @Summary 获取帖子的背书列表
// @Tags 帖子
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path uint true "帖子ID"
// @Success 200 {object} util.Response{data=[]model.Endorsement} "成功"
// @Router /api/posts/{id}/endorsements [get]
func (ctrl *PostController) GetEndorsements(c *gin.Context) {
	postID := util.MustParseUint(c.Param("id"))
	es, err := ctrl.Endorsements.ListForPost(postID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	count, err := ctrl.Endorsements.CountForPost(postID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{
		"endorsements": es,
		"count":        count,
	})
}
