package router

import (
	"fmt"

	"github.com/RigelNana/arksignup/frontend/docs"
	"github.com/RigelNana/arksignup/frontend/handler"
	"github.com/RigelNana/arksignup/frontend/templates"
	ginMetrics "github.com/RigelNana/arksignup/pkg/metrics/gin"
	"github.com/RigelNana/arksignup/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Setup(pages *handler.PageHandler, submit *handler.SubmitHandler, logger *logrus.Logger) (*gin.Engine, error) {
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		ginMetrics.PrometheusMiddleware("frontend"),
	)

	r.GET("/", pages.Home)
	r.POST("/submit", submit.Submit)

	r.GET("/about", pages.About)
	r.GET("/api/:name", pages.Name)
	r.GET("/url", pages.AgeCheck)

	docs.RegisterRoutes(r)
	return r, nil
}
