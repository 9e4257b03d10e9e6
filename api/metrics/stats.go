package metrics

// StatsResp 获取转发统计状态
type StatsResp struct {
	NumReceived  uint64 `json:"num_received"`
	NumForwarded uint64 `json:"num_forwarded"`
	NumFailed    uint64 `json:"num_failed"`
	NumSkipped   uint64 `json:"num_skipped"`
}
