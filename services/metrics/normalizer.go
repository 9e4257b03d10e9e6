package metrics

import (
	"bytes"
	"fmt"

	apimetrics "metric-forward/api/metrics"
)

// ParseBatches 解析请求体，兼容单个batch和batch数组两种格式
func ParseBatches(body []byte) ([]*apimetrics.Batch, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, &MalformedBatchError{Reason: "empty payload"}
	}

	if trimmed[0] == '[' {
		var batches []*apimetrics.Batch
		if err := json.Unmarshal(trimmed, &batches); err != nil {
			return nil, &MalformedBatchError{Reason: err.Error()}
		}
		return batches, nil
	}

	batch := new(apimetrics.Batch)
	if err := json.Unmarshal(trimmed, batch); err != nil {
		return nil, &MalformedBatchError{Reason: err.Error()}
	}
	return []*apimetrics.Batch{batch}, nil
}

// Normalize 将一个batch展开为MoogSoft记录，每个datapoint一条，保持原始顺序
// metric/source/tags由batch合成后广播到每条记录，time/data取自datapoint本身
// datapoints缺失或者任意datapoint缺timestamp/value时整个batch失败，零条产出
func Normalize(batch *apimetrics.Batch, tagKeys []string) ([]*apimetrics.Record, error) {
	if batch == nil {
		return nil, &MalformedBatchError{Reason: "batch is nil"}
	}
	if batch.Datapoints == nil {
		return nil, &MalformedBatchError{Reason: "datapoints is missing"}
	}

	metric := MetricTitle(batch)
	source := SourceFor(batch.Namespace, batch.Name)
	tags := BuildTags(batch, tagKeys)

	records := make([]*apimetrics.Record, 0, len(batch.Datapoints))
	for i := range batch.Datapoints {
		dp := batch.Datapoints[i]
		if dp == nil {
			return nil, &MalformedBatchError{Reason: fmt.Sprintf("datapoint %d is null", i)}
		}
		if dp.Timestamp == nil {
			return nil, &MalformedBatchError{Reason: fmt.Sprintf("datapoint %d missing timestamp", i)}
		}
		if dp.Value == nil {
			return nil, &MalformedBatchError{Reason: fmt.Sprintf("datapoint %d missing value", i)}
		}

		records = append(records, &apimetrics.Record{
			Metric: metric,
			Source: source,
			Time:   *dp.Timestamp,
			Data:   *dp.Value,
			Tags:   tags,
		})
	}
	return records, nil
}

// MetricTitle metric标题，优先displayName，缺失时回退到metric名
func MetricTitle(batch *apimetrics.Batch) string {
	if title, found := lookup(batch, "displayName"); found {
		return title
	}
	return batch.Name
}
