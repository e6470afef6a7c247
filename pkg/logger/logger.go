// Package logger 基于zap的全局结构化日志
//
// 设计说明：
// 1. 通过Init从配置初始化（级别、格式），并替换zap全局logger
// 2. 业务代码统一使用logger.L()获取，不直接依赖具体配置
// 3. console格式用于本地开发，json格式用于生产采集
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.Logger

// Options 日志初始化选项
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	EnableCaller bool   // 是否记录调用位置
}

// Init 初始化全局logger
func Init(opts Options) error {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("无效的日志级别 %q: %w", opts.Level, err)
	}

	var cfg zap.Config
	if opts.Format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableCaller = !opts.EnableCaller

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}

	global = l
	zap.ReplaceGlobals(l)
	return nil
}

// L 获取全局logger
// 未初始化时退化为开发模式logger，保证测试等场景可用
func L() *zap.Logger {
	if global == nil {
		global, _ = zap.NewDevelopment()
	}
	return global
}

// Sync 刷新缓冲的日志条目（进程退出前调用）
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
