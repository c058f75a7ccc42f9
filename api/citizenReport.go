package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
)

const anonymousName = "Anonymous"

// checkIn is the API for a survivor to report whether they are safe
func (s *Server) checkIn(c *gin.Context) {
	var params struct {
		UserID   string               `json:"userId"`
		UserName string               `json:"userName"`
		Status   schema.CheckInStatus `json:"status"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.UserName == "" {
		params.UserName = anonymousName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	checkIn, err := s.store.CheckIn(params.UserID, params.UserName, params.Status)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.publish(realtime.EventCheckIn, checkIn)

	c.JSON(http.StatusOK, checkIn)
}
