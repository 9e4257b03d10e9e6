package moogsoft

import (
	"sync/atomic"

	apimetrics "metric-forward/api/metrics"
)

var stats = new(dispatchStats)

// dispatchStats 记录转发状态
type dispatchStats struct {
	numReceived  uint64
	numForwarded uint64
	numFailed    uint64
	numSkipped   uint64
}

func (s *dispatchStats) addReceived(n uint64) {
	atomic.AddUint64(&s.numReceived, n)
}

func (s *dispatchStats) addForwarded(n uint64) {
	atomic.AddUint64(&s.numForwarded, n)
}

func (s *dispatchStats) addFailed(n uint64) {
	atomic.AddUint64(&s.numFailed, n)
}

func (s *dispatchStats) addSkipped(n uint64) {
	atomic.AddUint64(&s.numSkipped, n)
}

// Stats 返回转发统计快照
func Stats() apimetrics.StatsResp {
	return apimetrics.StatsResp{
		NumReceived:  atomic.LoadUint64(&stats.numReceived),
		NumForwarded: atomic.LoadUint64(&stats.numForwarded),
		NumFailed:    atomic.LoadUint64(&stats.numFailed),
		NumSkipped:   atomic.LoadUint64(&stats.numSkipped),
	}
}
