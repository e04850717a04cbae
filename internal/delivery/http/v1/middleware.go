package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDCtxKey = "request_id"
)

// HandleRequestIDMiddleware tags every request with an id for log
// correlation. An inbound X-Request-Id is trusted and echoed back,
// otherwise a fresh one is generated.
func (h *handlerImpl) HandleRequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestUUID, err := uuid.NewRandom()
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to generate request id")
			c.Next()
			return
		}
		requestID = requestUUID.String()
	}

	c.Set(requestIDCtxKey, requestID)
	c.Header(requestIDHeader, requestID)

	h.logger.Debug().
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("handling request")
	c.Next()
}
