package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/futsalero/internal/service"
	"github.com/d60-Lab/futsalero/pkg/response"
)

type recordMatchRequest struct {
	Code       string      `json:"code" binding:"required,identity"`
	Category   string      `json:"category" binding:"required"`
	Points     interface{} `json:"points"`
	Goals      interface{} `json:"goals"`
	Assists    interface{} `json:"assists"`
	Goalkeeper bool        `json:"goalkeeper"`
}

// RecordMatch 记录一场比赛
// @Summary 记录比赛
// @Tags 比赛
// @Accept json
// @Produce json
// @Param request body recordMatchRequest true "比赛数据"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /matches [post]
func (h *Handler) RecordMatch(c *gin.Context) {
	var req recordMatchRequest
	if !bindJSON(c, &req) {
		return
	}
	var stats service.MatchStats
	for _, f := range []struct {
		raw interface{}
		dst *int64
	}{
		{req.Points, &stats.Points},
		{req.Goals, &stats.Goals},
		{req.Assists, &stats.Assists},
	} {
		v, err := statValue(f.raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		*f.dst = v
	}
	stats.IsGoalkeeper = req.Goalkeeper

	id, err := h.matches.RecordMatch(c.Request.Context(), req.Code, req.Category, stats)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// ListMatches 按时间倒序查询比赛
// @Summary 比赛列表
// @Tags 比赛
// @Param code query string false "身份码"
// @Param category query string false "级别"
// @Param limit query int false "数量（最多 50）" default(20)
// @Param offset query int false "偏移" default(0)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /matches [get]
func (h *Handler) ListMatches(c *gin.Context) {
	limit, offset := pageQuery(c)
	items, err := h.matches.QueryMatches(c.Request.Context(), service.MatchQuery{
		Code:     c.Query("code"),
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"items": items, "limit": limit, "offset": offset})
}
