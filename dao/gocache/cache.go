package gocache

import (
	"metric-forward/conf"
	"time"

	"github.com/patrickmn/go-cache"
)

var goCache *cache.Cache

// Init 初始化gocache
func Init() {
	goCache = cache.New(conf.Conf.Transform.Cache.DefaultExpire*time.Second, conf.Conf.Transform.Cache.CleanupInterval*time.Second)
}

// Set 设置k，v
func Set(k string, v interface{}, d time.Duration) {
	goCache.Set(k, v, d)
}

// SetDefault 设置k, v 使用默认过期时间
func SetDefault(k string, v interface{}) {
	goCache.SetDefault(k, v)
}

// Get get value
func Get(k string) (interface{}, bool) {
	v, found := goCache.Get(k)
	return v, found
}

// Count 统计key个数
func Count() (cnt int) {
	cnt = goCache.ItemCount()
	return
}
