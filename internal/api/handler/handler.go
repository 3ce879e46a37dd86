package handler

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/futsalero/internal/service"
	"github.com/d60-Lab/futsalero/pkg/response"
)

// Handler 聚合所有 HTTP 入口，业务逻辑全部在 service 层
type Handler struct {
	identity service.IdentityRegistry
	social   service.SocialGraph
	matches  service.MatchLedger
	content  service.ContentStore
	ranking  service.RankingEngine
	now      func() time.Time
}

func NewHandler(
	identity service.IdentityRegistry,
	social service.SocialGraph,
	matches service.MatchLedger,
	content service.ContentStore,
	ranking service.RankingEngine,
) *Handler {
	return &Handler{
		identity: identity,
		social:   social,
		matches:  matches,
		content:  content,
		ranking:  ranking,
		now:      time.Now,
	}
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("identity", func(fl validator.FieldLevel) bool {
			return service.ValidateFormat(fl.Field().String())
		})
	}
}

// bindJSON 绑定请求体；身份码格式错误统一返回 invalid_identity
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "identity" {
				response.Error(c, service.ErrInvalidIdentity)
				return false
			}
		}
	}
	response.BadRequest(c, err.Error())
	return false
}

func postIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid post id")
		return 0, false
	}
	return id, true
}

func pageQuery(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultPageSize)))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return service.ClampPage(limit, offset)
}

// statValue 接受 JSON 数字或数字字符串
func statValue(v interface{}) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return service.ParseStat(strconv.FormatFloat(x, 'f', -1, 64))
	case json.Number:
		return service.ParseStat(x.String())
	case string:
		return service.ParseStat(x)
	default:
		return 0, service.ErrInvalidStats
	}
}

// Health 存活探针
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"ok": true, "time": h.now().UTC().Format(time.RFC3339)})
}
