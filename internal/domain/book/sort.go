package book

import (
	"strings"

	"github.com/xiebiao/catalog/internal/domain/catalog"
)

// Direction 排序方向
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// SortKey 解析后的排序键
// Relation为空表示books表自身的列，否则为关联表（author/editorial/genre）的列
type SortKey struct {
	Relation  catalog.Kind
	Column    string
	Direction Direction
}

// Desc 是否降序
func (k SortKey) Desc() bool {
	return k.Direction == Desc
}

// DefaultSort 未指定有效排序时使用 title ASC
var DefaultSort = SortKey{Column: "title", Direction: Asc}

// sortColumns 允许排序的books列（请求字段名 → 数据库列名）
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"price":       "price",
	"isAvailable": "is_available",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"authorId":    "author_id",
	"editorialId": "editorial_id",
	"genreId":     "genre_id",
}

// relationAliases 点号字段的关联别名
var relationAliases = map[string]catalog.Kind{
	"author":    catalog.KindAuthor,
	"editorial": catalog.KindEditorial,
	"genre":     catalog.KindGenre,
}

// relationColumns 关联表允许排序的列
var relationColumns = map[string]bool{"id": true, "name": true}

// ParseSort 解析orderBy参数
//
// 每个值为 "field,direction"，也可以在一个值里平铺多组："price,DESC,title,ASC"。
// 方向缺省为ASC；方向非法时该组退化为 title ASC；
// 未知的关联别名或字段返回400。所有组都为空时返回默认排序。
func ParseSort(values []string) ([]SortKey, error) {
	var keys []SortKey
	for _, value := range values {
		parts := strings.Split(value, ",")
		for i := 0; i < len(parts); i += 2 {
			field := strings.TrimSpace(parts[i])
			dir := ""
			if i+1 < len(parts) {
				dir = parts[i+1]
			}
			if field == "" {
				continue
			}

			key, err := parseToken(field, dir)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		return []SortKey{DefaultSort}, nil
	}
	return keys, nil
}

func parseToken(field, dir string) (SortKey, error) {
	direction, ok := parseDirection(dir)
	if !ok {
		return DefaultSort, nil
	}

	if alias, column, dotted := strings.Cut(field, "."); dotted {
		kind, ok := relationAliases[alias]
		if !ok {
			return SortKey{}, ErrUnknownRelation(alias)
		}
		if !relationColumns[column] {
			return SortKey{}, ErrUnknownSortField(field)
		}
		return SortKey{Relation: kind, Column: column, Direction: direction}, nil
	}

	column, ok := sortColumns[field]
	if !ok {
		return SortKey{}, ErrUnknownSortField(field)
	}
	return SortKey{Column: column, Direction: direction}, nil
}

func parseDirection(dir string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(dir)) {
	case "", "ASC":
		return Asc, true
	case "DESC":
		return Desc, true
	default:
		return "", false
	}
}
