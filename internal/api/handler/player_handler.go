package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/internal/service"
	"github.com/d60-Lab/futsalero/pkg/response"
)

type registerRequest struct {
	Role     string `json:"role" binding:"required"`
	Username string `json:"username" binding:"max=64"`
}

type syncRequest struct {
	Code       string   `json:"code" binding:"required,identity"`
	Username   string   `json:"username" binding:"max=64"`
	Categories []string `json:"categories"`
}

type standing struct {
	Category model.Category `json:"category"`
	Score    int64          `json:"score"`
	Matches  int64          `json:"matches"`
}

type profileResponse struct {
	Player    *model.Player `json:"player"`
	Standings []standing    `json:"standings"`
}

// Register 注册球员或球迷，签发身份码
// @Summary 注册
// @Tags 球员
// @Accept json
// @Produce json
// @Param request body registerRequest true "角色与昵称"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.identity.Register(c.Request.Context(), req.Role, req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"code": p.Code, "role": p.Role})
}

// SyncProfile 同步昵称与比赛级别
// @Summary 同步档案
// @Tags 球员
// @Accept json
// @Produce json
// @Param request body syncRequest true "档案"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /players/sync [post]
func (h *Handler) SyncProfile(c *gin.Context) {
	var req syncRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.identity.SyncProfile(c.Request.Context(), req.Code, req.Username, req.Categories); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetProfile 查询档案及各级别实时得分
// @Summary 查询档案
// @Tags 球员
// @Produce json
// @Param code path string true "身份码"
// @Success 200 {object} response.Response{data=profileResponse}
// @Failure 404 {object} response.Response
// @Router /players/{code} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	h.renderProfile(c, c.Param("code"))
}

// Search 按身份码精确查找（忽略大小写与首尾空白）
// @Summary 搜索身份码
// @Tags 球员
// @Produce json
// @Param code query string true "身份码"
// @Success 200 {object} response.Response{data=profileResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /search [get]
func (h *Handler) Search(c *gin.Context) {
	h.renderProfile(c, service.NormalizeCode(c.Query("code")))
}

func (h *Handler) renderProfile(c *gin.Context, code string) {
	ctx := c.Request.Context()
	p, err := h.identity.Profile(ctx, code)
	if err != nil {
		response.Error(c, err)
		return
	}
	standings := make([]standing, 0, len(p.Categories))
	for _, cat := range p.Categories {
		st, err := h.ranking.Standing(ctx, string(cat), p.Code)
		if err != nil {
			response.Error(c, err)
			return
		}
		standings = append(standings, standing{Category: cat, Score: st.Score, Matches: st.Matches})
	}
	response.Success(c, profileResponse{Player: p, Standings: standings})
}
