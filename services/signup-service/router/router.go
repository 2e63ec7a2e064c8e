package router

import (
	"github.com/RigelNana/arksignup/pkg/middleware"
	ginMetrics "github.com/RigelNana/arksignup/pkg/metrics/gin"
	"github.com/RigelNana/arksignup/services/signup-service/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Setup(signupHandler *handler.SignupHandler, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		ginMetrics.PrometheusMiddleware("signup-service"),
	)

	r.POST("/submit", signupHandler.Submit)
	r.GET("/view", signupHandler.View)
	r.GET("/healthz", signupHandler.Health)
	return r
}
