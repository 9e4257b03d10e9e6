package metrics

import (
	"fmt"

	apimetrics "metric-forward/api/metrics"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BuildTags 按配置的key顺序生成 "key:value" 标签
// 找不到的key直接跳过，不产出空标签；value不做任何转义，包含冒号原样透传
func BuildTags(batch *apimetrics.Batch, keys []string) []string {
	tags := make([]string, 0, len(keys))
	for _, key := range keys {
		value, found := lookup(batch, key)
		if !found {
			continue
		}
		tags = append(tags, key+":"+value)
	}
	return tags
}

// lookup 按 metadata -> dimensions -> 顶层字段 的固定优先级查找key
// 空值视为未命中，继续向下查找
func lookup(batch *apimetrics.Batch, key string) (string, bool) {
	if v, ok := batch.Metadata[key]; ok {
		if s := stringify(v); s != "" {
			return s, true
		}
	}
	if v, ok := batch.Dimensions[key]; ok {
		if s := stringify(v); s != "" {
			return s, true
		}
	}

	var value string
	switch key {
	case "name":
		value = batch.Name
	case "namespace":
		value = batch.Namespace
	case "resourceGroup":
		value = batch.ResourceGroup
	case "compartmentId":
		value = batch.CompartmentID
	}
	if value != "" {
		return value, true
	}
	return "", false
}

// stringify 字符串原样返回，其他类型的值按JSON编码成字符串
func stringify(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
