package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ReqCount 统计 HTTP 请求总数
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrilog_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ReqDuration 统计请求耗时分布
	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "nutrilog_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)
)

// Init 向 Prometheus 注册全部指标
func Init() {
	prometheus.MustRegister(ReqCount, ReqDuration)
}
