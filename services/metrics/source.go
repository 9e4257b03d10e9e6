package metrics

import (
	"strings"
	"unicode"

	"metric-forward/dao/gocache"
)

// BuildSource 由namespace和metric名合成层级化的source标识
// namespace按下划线/点切分，metric名按驼峰边界切分，全部小写后用点拼接
// 纯函数，任意输入（包括空串）都产出尽力而为的结果，空段丢弃
func BuildSource(namespace, name string) string {
	elements := strings.FieldsFunc(namespace, func(r rune) bool {
		return r == '_' || r == '.'
	})
	elements = append(elements, camelCaseSplit(name)...)

	parts := make([]string, 0, len(elements))
	for i := range elements {
		if elements[i] == "" {
			continue
		}
		parts = append(parts, strings.ToLower(elements[i]))
	}
	return strings.Join(parts, ".")
}

// camelCaseSplit 按驼峰边界切分字符串
// 边界只出现在小写字母后面的大写字母之前，连续大写视为一个单词
func camelCaseSplit(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i-1]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}

// SourceFor 带缓存的BuildSource
// 同一个namespace/name组合的batch会高频出现，合成结果缓存在gocache中
func SourceFor(namespace, name string) string {
	key := namespace + "|" + name
	if v, found := gocache.Get(key); found {
		if source, ok := v.(string); ok {
			return source
		}
	}

	source := BuildSource(namespace, name)
	gocache.SetDefault(key, source)
	return source
}
