// Package metrics 基于Prometheus的业务与HTTP指标
//
// 指标设计：
// - http_requests_total{method,path,status}: 请求计数
// - http_request_duration_seconds{method,path}: 请求耗时分布
// - bookshop_orders_created_total: 成功下单数
// - bookshop_checkout_failures_total{reason}: 结算失败数（empty_cart/insufficient_stock/internal）
//
// 通过promauto注册到默认Registry，/metrics路由用promhttp暴露。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// OrdersCreated 成功创建的订单数
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshop_orders_created_total",
		Help: "Total number of successfully placed orders",
	})

	// CheckoutFailures 结算失败数（按原因分类）
	CheckoutFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookshop_checkout_failures_total",
		Help: "Total number of failed checkout attempts by reason",
	}, []string{"reason"})
)

// 结算失败原因标签值
const (
	ReasonEmptyCart         = "empty_cart"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonInternal          = "internal"
)
