package gin

import (
	"strconv"
	"time"

	"github.com/RigelNana/arksignup/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// PrometheusMiddleware 为 Gin 添加 Prometheus 指标
func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// unmatched routes would otherwise explode label cardinality
			path = "unmatched"
		}
		statusCode := strconv.Itoa(c.Writer.Status())
		metrics.RecordRequest(serviceName, c.Request.Method+" "+path, statusCode, time.Since(start))
	}
}
