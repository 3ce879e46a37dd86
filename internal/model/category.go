package model

import "strings"

// Category 比赛级别（固定枚举）
type Category string

const (
	CategoryLocal             Category = "LOCAL"
	CategoryProvincial        Category = "PROVINCIAL"
	CategoryAutonomica        Category = "AUTONOMICA"
	CategoryThirdDivision     Category = "3_DIVISION"
	CategorySecondDivisionB   Category = "2_DIVISION_B"
	CategorySecondDivision    Category = "2_DIVISION"
	CategoryPrimeraDivision   Category = "PRIMERA_DIVISION"
	CategorySeleccionEspanola Category = "SELECCION_ESPANOLA"
)

// Categories lists every tier from lowest to highest.
var Categories = []Category{
	CategoryLocal,
	CategoryProvincial,
	CategoryAutonomica,
	CategoryThirdDivision,
	CategorySecondDivisionB,
	CategorySecondDivision,
	CategoryPrimeraDivision,
	CategorySeleccionEspanola,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ParseCategory 严格匹配，不做大小写转换
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.TrimSpace(s))
	return c, c.Valid()
}

// Role 注册身份
type Role string

const (
	RolePlayer Role = "player"
	RoleFan    Role = "fan"
)

func (r Role) Valid() bool { return r == RolePlayer || r == RoleFan }

// Scope 排行榜范围
type Scope string

const (
	ScopeGlobal  Scope = "global"
	ScopeFriends Scope = "friends"
)

// ParseScope 未识别的范围一律按 global 处理
func ParseScope(s string) Scope {
	if Scope(strings.ToLower(strings.TrimSpace(s))) == ScopeFriends {
		return ScopeFriends
	}
	return ScopeGlobal
}
