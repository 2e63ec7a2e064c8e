package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const adultAge = 18

type PageHandler struct {
	logger *logrus.Logger
	now    func() time.Time
}

func NewPageHandler(logger *logrus.Logger) *PageHandler {
	return &PageHandler{logger: logger, now: time.Now}
}

// Home renders the signup form with the current weekday and time.
// GET /
func (h *PageHandler) Home(c *gin.Context) {
	now := h.now()
	day := now.Format("Monday")
	h.logger.WithField("day_of_week", day).Info("rendering home page")

	c.HTML(http.StatusOK, "index.html", gin.H{
		"day_of_week":  day,
		"current_time": now.Format("15:04:05"),
	})
}

// GET /about
func (h *PageHandler) About(c *gin.Context) {
	c.String(http.StatusOK, "This is the About page KJO.")
}

// GET /api/:name
func (h *PageHandler) Name(c *gin.Context) {
	c.String(http.StatusOK, "You accessed the API with name: %s", c.Param("name"))
}

// AgeCheck greets name and tells adults from minors; strictly older than 18
// counts as adult.
// GET /url?name=kjo&age=19
func (h *PageHandler) AgeCheck(c *gin.Context) {
	name := c.Query("name")
	age, err := strconv.Atoi(c.Query("age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be an integer"})
		return
	}

	if age > adultAge {
		c.String(http.StatusOK, "Hello %s, you are an adult.", name)
		return
	}
	c.String(http.StatusOK, "Hello %s, you are a minor and this site isn't for you.", name)
}
