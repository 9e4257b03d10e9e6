package metrics

// Batch 监控服务推送的一组原始metric数据
// 一个batch对应一个namespace/metric/维度组合，datapoints共享batch级字段
type Batch struct {
	Namespace     string                 `json:"namespace" binding:"required"`
	ResourceGroup string                 `json:"resourceGroup" binding:"omitempty"`
	CompartmentID string                 `json:"compartmentId" binding:"omitempty"`
	Name          string                 `json:"name" binding:"required"`
	Dimensions    map[string]interface{} `json:"dimensions" binding:"omitempty"`
	Metadata      map[string]interface{} `json:"metadata" binding:"omitempty"`
	Datapoints    []*Datapoint           `json:"datapoints" binding:"required,dive,required"`
}

// Datapoint 单个时序采样点
// timestamp/value使用指针，区分字段缺失和零值
type Datapoint struct {
	Timestamp *int64   `json:"timestamp"`
	Value     *float64 `json:"value"`
	Count     int      `json:"count"`
}

// Record MoogSoft格式的单条metric数据，每个datapoint产出一条
type Record struct {
	Metric string   `json:"metric"`
	Source string   `json:"source"`
	Time   int64    `json:"time"`
	Data   float64  `json:"data"`
	Tags   []string `json:"tags"`
}
