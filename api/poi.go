package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
)

func (s *Server) listSafeZones(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListSafeZones())
}

// updateSafeZone is the API for staff to update occupancy and supplies of a zone
func (s *Server) updateSafeZone(c *gin.Context) {
	id := c.Param("zoneID")

	var patch schema.SafeZonePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	zone, err := s.store.UpdateSafeZone(id, patch)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.publish(realtime.EventSafeZoneUpdated, zone)

	c.JSON(http.StatusOK, zone)
}
