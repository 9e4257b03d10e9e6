package metrics

import "fmt"

// MalformedBatchError 原始payload不满足结构要求
// 出现该错误时整个batch丢弃，不产生任何outbound记录
type MalformedBatchError struct {
	Reason string
}

func (e *MalformedBatchError) Error() string {
	return fmt.Sprintf("malformed batch: %s", e.Reason)
}
