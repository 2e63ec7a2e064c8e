package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/RigelNana/arksignup/pkg/metrics"
	"github.com/RigelNana/arksignup/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxFormMemory = 1 << 20

type SubmitHandler struct {
	backend BackendClient
	logger  *logrus.Logger
}

func NewSubmitHandler(backend BackendClient, logger *logrus.Logger) *SubmitHandler {
	return &SubmitHandler{backend: backend, logger: logger}
}

// Submit relays the form to the backend and acknowledges with the submitted
// fields. The acknowledgment does not depend on the backend outcome.
// POST /submit
func (h *SubmitHandler) Submit(c *gin.Context) {
	fields, err := formFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form: " + err.Error()})
		return
	}

	requestID := middleware.RequestIDFromCtx(c)
	entry := h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"fields":     len(fields),
	})

	// A client disconnect must not abort the relay; the backend client's
	// timeout still bounds it.
	id, err := h.backend.Forward(context.WithoutCancel(c.Request.Context()), requestID, fields)
	if err != nil {
		metrics.RelayedSubmissions.WithLabelValues("error").Inc()
		entry.WithError(err).Error("relay to backend failed")
	} else {
		metrics.RelayedSubmissions.WithLabelValues("success").Inc()
		entry.WithField("inserted_id", id).Info("relayed submission")
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": fields})
}

// formFields keeps the first value of every submitted key.
func formFields(c *gin.Context) (map[string]string, error) {
	var values url.Values
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
		values = c.Request.MultipartForm.Value
	} else {
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		values = c.Request.PostForm
	}

	fields := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}
	return fields, nil
}
