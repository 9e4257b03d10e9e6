package metrics

import (
	"io/ioutil"
	"net/http"

	apimetrics "metric-forward/api/metrics"
	"metric-forward/conf"
	"metric-forward/services/metrics"
	"metric-forward/services/remote/moogsoft"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Ingest 接收监控服务推送的原始metric事件，转换后转发到MoogSoft
// batch结构不合法时整个请求失败，不转发该batch的任何记录
func Ingest(c *gin.Context) {
	body, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		zap.L().Error("read request.body failed", zap.Error(errors.Wrap(err, "ingest")))
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": http.StatusText(http.StatusBadRequest),
			"data":    "",
		})
		return
	}

	batches, err := metrics.ParseBatches(body)
	if err != nil {
		zap.L().Error("parse metric batches failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": err.Error(),
			"data":    "",
		})
		return
	}

	keys := conf.Conf.Transform.KeyList()
	records := make([]*apimetrics.Record, 0)
	for i := range batches {
		rs, err := metrics.Normalize(batches[i], keys)
		if err != nil {
			zap.L().Error("normalize batch failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": err.Error(),
				"data":    "",
			})
			return
		}
		records = append(records, rs...)
	}

	// 转发关闭时返回转换结果供检查
	if !conf.Conf.MoogSoft.ForwardingEnabled {
		c.JSON(http.StatusOK, gin.H{
			"code":    http.StatusOK,
			"message": "forwarding disabled",
			"data":    records,
		})
		return
	}

	failed := moogsoft.SendAll(records)
	if len(failed) > 0 {
		c.JSON(http.StatusBadGateway, gin.H{
			"code":    http.StatusBadGateway,
			"message": "partial delivery failure",
			"data": gin.H{
				"sent":   len(records) - len(failed),
				"failed": len(failed),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"sent": len(records),
		},
	})
}
