package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/RigelNana/arksignup/pkg/middleware"
	"github.com/RigelNana/arksignup/services/signup-service/models"
	"github.com/RigelNana/arksignup/services/signup-service/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxFormMemory = 1 << 20

var errNotObject = errors.New("request body must be a JSON object")

type SignupHandler struct {
	svc    service.SignupService
	logger *logrus.Logger
}

func NewSignupHandler(svc service.SignupService, logger *logrus.Logger) *SignupHandler {
	return &SignupHandler{svc: svc, logger: logger}
}

// Submit stores the request body as one signup record.
// POST /submit
func (h *SignupHandler) Submit(c *gin.Context) {
	signup, err := bindSignup(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	id, err := h.svc.Submit(c.Request.Context(), signup)
	if err != nil {
		h.logger.WithError(err).WithField("request_id", middleware.RequestIDFromCtx(c)).Error("submit failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store signup"})
		return
	}

	c.JSON(http.StatusOK, models.SubmitResponse{InsertedID: id})
}

// View lists every stored record without identifiers.
// GET /view
func (h *SignupHandler) View(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("view failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list signups"})
		return
	}

	c.JSON(http.StatusOK, models.ViewResponse{Data: records})
}

// Health pings the store.
// GET /healthz
func (h *SignupHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		h.logger.WithError(err).Warn("store ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindSignup accepts a JSON object, or form fields when the client posts a
// form directly.
func bindSignup(c *gin.Context) (models.Signup, error) {
	switch c.ContentType() {
	case gin.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		return models.SignupFromForm(c.Request.PostForm), nil
	case gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
		return models.SignupFromForm(c.Request.MultipartForm.Value), nil
	}

	var signup models.Signup
	if err := c.ShouldBindJSON(&signup); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errNotObject
		}
		return nil, err
	}
	if signup == nil {
		return nil, errNotObject
	}
	return signup, nil
}
