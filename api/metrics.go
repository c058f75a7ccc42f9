package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// overview returns the figures of the coordinator dashboard
func (s *Server) overview(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Overview())
}
