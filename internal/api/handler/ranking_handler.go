package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/pkg/response"
)

// Ranking 某级别排行榜；scope=friends 时只看 viewer 关注的人
// @Summary 排行榜
// @Tags 排行
// @Param category query string true "级别"
// @Param scope query string false "global 或 friends" default(global)
// @Param viewer query string false "查看者身份码"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Router /ranking [get]
func (h *Handler) Ranking(c *gin.Context) {
	category := c.Query("category")
	scope := c.DefaultQuery("scope", string(model.ScopeGlobal))
	items, err := h.ranking.Rank(c.Request.Context(), category, scope, c.Query("viewer"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"category": category, "scope": model.ParseScope(scope), "items": items})
}
