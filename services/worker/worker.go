package worker

import (
	"sync"

	apimetrics "metric-forward/api/metrics"
)

// Handler 处理单条outbound记录
type Handler interface {
	WorkHandler(record *apimetrics.Record)
}

// Pool 有界并发的记录处理池
// 一个batch内的记录按worker数并发处理，单条记录的处理是原子的
type Pool struct {
	num     int
	queue   chan *apimetrics.Record
	wg      sync.WaitGroup
	handler Handler
}

// NewPool 创建worker池
func NewPool(num int) *Pool {
	if num <= 0 {
		num = 1
	}
	return &Pool{
		num:   num,
		queue: make(chan *apimetrics.Record, num),
	}
}

// Register 注册记录处理的handler
func (p *Pool) Register(h Handler) {
	p.handler = h
}

// Run 启动worker
func (p *Pool) Run() {
	if p.handler == nil {
		panic("worker pool run before handler registered")
	}
	for i := 0; i < p.num; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for record := range p.queue {
				p.handler.WorkHandler(record)
			}
		}()
	}
}

// Submit 提交一条记录，队列满时阻塞
func (p *Pool) Submit(record *apimetrics.Record) {
	p.queue <- record
}

// Close 关闭队列并等待全部记录处理完成
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}
