package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/futsalero/pkg/response"
)

type createPostRequest struct {
	Code    string  `json:"code" binding:"required,identity"`
	Body    string  `json:"body"`
	MatchID *uint64 `json:"match_id"`
}

type commentRequest struct {
	Code string `json:"code" binding:"required,identity"`
	Text string `json:"text"`
}

type voteRequest struct {
	Code  string `json:"code" binding:"required,identity"`
	Value *bool  `json:"value" binding:"required"`
}

type reportRequest struct {
	Code string `json:"code" binding:"required,identity"`
}

// CreatePost 发布动态
// @Summary 发布动态
// @Tags 动态
// @Accept json
// @Produce json
// @Param request body createPostRequest true "动态内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.content.CreatePost(c.Request.Context(), req.Code, req.Body, req.MatchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// ListPosts 最新动态
// @Summary 动态列表
// @Tags 动态
// @Param limit query int false "数量（最多 50）" default(20)
// @Param offset query int false "偏移" default(0)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	limit, offset := pageQuery(c)
	items, err := h.content.ListPosts(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"items": items, "limit": limit, "offset": offset})
}

// AddComment 评论动态（最多 140 字）
// @Summary 发表评论
// @Tags 动态
// @Accept json
// @Produce json
// @Param id path int true "动态 ID"
// @Param request body commentRequest true "评论"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	var req commentRequest
	if !bindJSON(c, &req) {
		return
	}
	cm, err := h.content.AddComment(c.Request.Context(), id, req.Code, req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cm)
}

// ListComments 按时间正序返回评论
// @Summary 评论列表
// @Tags 动态
// @Param id path int true "动态 ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /posts/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	items, err := h.content.ListComments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"post_id": id, "items": items})
}

// Vote 真假投票，同一人重复投票覆盖旧值
// @Summary 投票
// @Tags 动态
// @Accept json
// @Produce json
// @Param id path int true "动态 ID"
// @Param request body voteRequest true "投票"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/vote [post]
func (h *Handler) Vote(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	var req voteRequest
	if !bindJSON(c, &req) {
		return
	}
	tally, err := h.content.Vote(c.Request.Context(), id, req.Code, *req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tally)
}

// VoteCounts 投票统计
// @Summary 投票统计
// @Tags 动态
// @Param id path int true "动态 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/votes [get]
func (h *Handler) VoteCounts(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	tally, err := h.content.VoteCounts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tally)
}

// Report 举报动态，累计 30 次自动删除
// @Summary 举报
// @Tags 动态
// @Accept json
// @Produce json
// @Param id path int true "动态 ID"
// @Param request body reportRequest true "举报人"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/report [post]
func (h *Handler) Report(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	var req reportRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.content.Report(c.Request.Context(), id, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
