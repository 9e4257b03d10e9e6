package metrics

import (
	"os"
	"testing"

	"metric-forward/conf"
	"metric-forward/dao/gocache"
)

func TestMain(m *testing.M) {
	conf.Conf = &conf.Config{
		AppConfig: &conf.AppConfig{Name: "metric-forward", Mode: "test"},
		MoogSoft:  &conf.MoogSoft{ContentType: "application/json", Timeout: 2, WorkerNum: 2},
		Transform: &conf.Transform{
			TagKeys: conf.DefaultTagKeys,
			Cache:   &conf.Cache{DefaultExpire: 600, CleanupInterval: 1800},
		},
	}
	gocache.Init()
	os.Exit(m.Run())
}
