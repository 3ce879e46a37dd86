package model

// All 返回需要建表的模型，顺序即依赖顺序
func All() []any {
	return []any{
		&Player{},
		&Follow{},
		&MatchEntry{},
		&Post{},
		&Comment{},
		&Vote{},
		&Report{},
	}
}
