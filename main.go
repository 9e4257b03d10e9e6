package main

import (
	"context"
	"flag"
	"fmt"
	"metric-forward/conf"
	"metric-forward/dao/gocache"
	"metric-forward/routes"
	"metric-forward/services/metrics"
	"metric-forward/utils/logger"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"

	"github.com/gin-gonic/gin"

	"go.uber.org/zap"
)

func main() {
	replayFile := flag.String("replay", "", "replay a local json metrics file and exit")
	flag.Parse()

	// 初始化配置
	if err := conf.Init(); err != nil {
		fmt.Printf("init settings failed, err:%v\n", err)
		return
	}

	// 初始化日志
	if err := logger.Init(conf.Conf.LogConfig); err != nil {
		fmt.Printf("init logger failed, err:%v\n", err)
		return
	}
	defer zap.L().Sync()

	// 初始化gocache
	gocache.Init()

	// 本地调试模式，转发本地文件后退出
	if *replayFile != "" {
		if err := metrics.Replay(*replayFile); err != nil {
			zap.L().Error("replay failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	// 初始化路由
	app := gin.New()
	routes.Init(app)
	pprof.Register(app)

	// 启动服务（优雅关机）
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.Conf.AppConfig.Port),
		Handler: app,
	}

	go func() {
		// 开启一个goroutine启动服务
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("listen: ", zap.Error(err))
		}
	}()

	// 等待中断信号来优雅地关闭服务器，为关闭服务器操作设置一个5秒的超时
	// 创建一个接收信号的通道
	quit := make(chan os.Signal, 1)

	// signal.Notify把收到的 syscall.SIGINT或syscall.SIGTERM 信号转发给quit
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutdown Server ...")
	// 创建一个5秒超时的context
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// 5秒内优雅关闭服务（将未处理完的请求处理完再关闭服务），超过5秒就超时退出
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Fatal("Server Shutdown: ", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
