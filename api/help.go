package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
)

// listRequests returns every help request
func (s *Server) listRequests(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListRequests())
}

// askForHelp is the API for a survivor to ask for help
func (s *Server) askForHelp(c *gin.Context) {
	var params schema.NewHelpRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.store.CreateRequest(params)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.counter("requests_created").Inc(1)
	s.publish(realtime.EventNewRequest, req)

	c.JSON(http.StatusOK, req)
}

// updateHelp is the API to merge changes into a help request
func (s *Server) updateHelp(c *gin.Context) {
	id := c.Param("requestID")

	var patch schema.HelpRequestPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, volunteer, err := s.store.UpdateRequest(id, patch)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.publish(realtime.EventRequestUpdated, req)
	if volunteer != nil {
		s.publish(realtime.EventUserUpdated, volunteer)
	}

	c.JSON(http.StatusOK, req)
}

// acceptHelp assigns a pending request to the volunteer who accepted it.
// Requests that are gone or no longer pending are left alone.
func (s *Server) acceptHelp(params realtime.AcceptRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, volunteer, err := s.store.AcceptRequest(params.RequestID, params.VolunteerID, params.VolunteerName)
	if err != nil {
		log.WithError(err).WithField("request", params.RequestID).Debug("accept ignored")
		return
	}

	s.counter("requests_accepted").Inc(1)
	s.publish(realtime.EventRequestUpdated, req)
	if volunteer != nil {
		s.publish(realtime.EventUserUpdated, volunteer)
	}
}

// completeHelp fulfils an assigned request
func (s *Server) completeHelp(params realtime.CompleteRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, volunteer, err := s.store.CompleteRequest(params.RequestID, params.VolunteerID)
	if err != nil {
		log.WithError(err).WithField("request", params.RequestID).Debug("complete ignored")
		return
	}

	s.counter("requests_completed").Inc(1)
	s.publish(realtime.EventRequestUpdated, req)
	if volunteer != nil {
		s.publish(realtime.EventUserUpdated, volunteer)
	}
}
