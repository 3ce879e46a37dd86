package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/futsalero/pkg/response"
)

type followRequest struct {
	Follower string `json:"follower" binding:"required,identity"`
	Target   string `json:"target" binding:"required,identity"`
}

// Follow 建立关注（幂等，首次关注时被关注者加 1 分）
// @Summary 关注球员
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followRequest true "关注信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /follow [post]
func (h *Handler) Follow(c *gin.Context) {
	var req followRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.social.Follow(c.Request.Context(), req.Follower, req.Target)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"created": created})
}

// ListFollowing 查询某球员关注的人
// @Summary 查询关注列表
// @Tags 关系链
// @Param code path string true "身份码"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /players/{code}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	code := c.Param("code")
	list, err := h.social.Following(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"code": code, "list": list})
}
