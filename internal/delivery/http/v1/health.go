package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthz reports process liveness only.
// It never touches the document store.
func (h *handlerImpl) HandleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
