package metrics

import (
	"bufio"
	"bytes"
	"os"

	apimetrics "metric-forward/api/metrics"
	"metric-forward/conf"
	"metric-forward/services/remote/moogsoft"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Replay 读取本地metric文件并转发，用于本地调试
// 每行一个JSON文档，单个batch或batch数组均可
func Replay(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "open replay file %s", filename)
	}
	defer f.Close()

	keys := conf.Conf.Transform.KeyList()
	var records []*apimetrics.Record

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		batches, err := ParseBatches(line)
		if err != nil {
			return err
		}
		for i := range batches {
			rs, err := Normalize(batches[i], keys)
			if err != nil {
				return err
			}
			records = append(records, rs...)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read replay file")
	}

	failed := moogsoft.SendAll(records)
	if len(failed) > 0 {
		return errors.Errorf("replay: %d of %d records failed", len(failed), len(records))
	}

	zap.L().Info("replay finished", zap.Int("records", len(records)))
	return nil
}
