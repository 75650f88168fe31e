package service

import (
	"strings"
)

// GenreTable TMDB 类型 ID 与英文名的双向映射
// 构建后不再修改，可安全并发读取
type GenreTable map[int]string

// NewGenreTable 创建默认类型映射表（TMDB 电影类型共 19 项）
func NewGenreTable() GenreTable {
	return GenreTable{
		28:    "Action",
		12:    "Adventure",
		16:    "Animation",
		35:    "Comedy",
		80:    "Crime",
		99:    "Documentary",
		18:    "Drama",
		10751: "Family",
		14:    "Fantasy",
		36:    "History",
		27:    "Horror",
		10402: "Music",
		9648:  "Mystery",
		10749: "Romance",
		878:   "Science Fiction",
		10770: "TV Movie",
		53:    "Thriller",
		10752: "War",
		37:    "Western",
	}
}

// IDsToNames 批量把类型 ID 映射为名称
// 未知 ID 直接丢弃：上游分类体系会演进，不视为错误
func (t GenreTable) IDsToNames(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := t[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// NameToID 按名称反查类型 ID（不区分大小写）
// 第二个返回值为 false 表示没有匹配项
func (t GenreTable) NameToID(name string) (int, bool) {
	lower := strings.ToLower(name)
	for id, n := range t {
		if strings.ToLower(n) == lower {
			return id, true
		}
	}
	return 0, false
}

// NamesToIDs 批量按名称反查 ID，无匹配的名称丢弃
func (t GenreTable) NamesToIDs(names []string) []int {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		if id, ok := t.NameToID(name); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
