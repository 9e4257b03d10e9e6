package moogsoft

import (
	"fmt"
	"sync"
	"time"

	apimetrics "metric-forward/api/metrics"
	"metric-forward/conf"
	"metric-forward/services/worker"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// 复用连接池，避免每次POST重建连接
var client = &fasthttp.Client{
	MaxConnsPerHost: 10,
}

// DeliveryError 单条记录转发失败
// 携带失败的记录和状态码/原因，不在内部重试
type DeliveryError struct {
	Record *apimetrics.Record
	Status int
	Cause  error
}

func (e *DeliveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("send record to moogsoft failed: %v", e.Cause)
	}
	return fmt.Sprintf("send record to moogsoft failed: status %d", e.Status)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// Send 序列化单条记录并POST到ingestion endpoint
// 非2xx响应和网络错误都返回*DeliveryError
func Send(record *apimetrics.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return &DeliveryError{Record: record, Cause: err}
	}
	return post(data, record)
}

func post(data []byte, record *apimetrics.Record) error {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(conf.Conf.MoogSoft.APIEndpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(conf.Conf.MoogSoft.ContentType)
	req.Header.Set("apiKey", conf.Conf.MoogSoft.APIToken)
	req.SetBody(data)

	timeout := time.Duration(conf.Conf.MoogSoft.Timeout) * time.Second
	if err := client.DoTimeout(req, resp, timeout); err != nil {
		return &DeliveryError{Record: record, Cause: err}
	}

	if resp.StatusCode()/100 != 2 {
		return &DeliveryError{Record: record, Status: resp.StatusCode()}
	}
	return nil
}

// sendHandler 收集batch内的转发失败
type sendHandler struct {
	mu     sync.Mutex
	failed []*DeliveryError
}

func (h *sendHandler) WorkHandler(record *apimetrics.Record) {
	err := Send(record)
	if err == nil {
		stats.addForwarded(1)
		return
	}

	de, ok := err.(*DeliveryError)
	if !ok {
		de = &DeliveryError{Record: record, Cause: err}
	}
	// 每条丢弃的记录至少记录一次日志
	zap.L().Error("send record to moogsoft failed",
		zap.String("source", record.Source),
		zap.Int64("time", record.Time),
		zap.Int("status", de.Status),
		zap.Error(de.Cause))
	stats.addFailed(1)

	h.mu.Lock()
	h.failed = append(h.failed, de)
	h.mu.Unlock()
}

// SendAll 按配置的并发度转发全部记录
// 转发开关关闭时不发任何请求，按成功处理；单条失败不影响同batch其他记录
func SendAll(records []*apimetrics.Record) []*DeliveryError {
	stats.addReceived(uint64(len(records)))

	if !conf.Conf.MoogSoft.ForwardingEnabled {
		stats.addSkipped(uint64(len(records)))
		zap.L().Info("moogsoft forwarding is disabled - nothing sent",
			zap.Int("records", len(records)))
		return nil
	}

	h := new(sendHandler)
	pool := worker.NewPool(conf.Conf.MoogSoft.WorkerNum)
	pool.Register(h)
	pool.Run()
	for i := range records {
		pool.Submit(records[i])
	}
	pool.Close()

	return h.failed
}
