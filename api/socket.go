package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
)

// socket upgrades the request into a realtime session
func (s *Server) socket(c *gin.Context) {
	if s.hub == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorRealtimeNotReady)
		return
	}

	// the upgrader has already answered the peer when it fails
	if err := s.hub.ServeWS(c.Writer, c.Request, s.HandleEvent); err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		c.Abort()
	}
}

// HandleEvent applies an event sent by a realtime session. Events carrying
// an invalid payload or targeting an unknown or stale request are dropped
// without telling the sender.
func (s *Server) HandleEvent(session *realtime.Session, e realtime.Event) {
	logger := log.WithField("event", e.Name)
	if session != nil {
		logger = logger.WithField("session", session.ID)
	}

	switch e.Name {
	case realtime.EventAcceptRequest:
		var params realtime.AcceptRequest
		if err := e.Decode(&params); err != nil {
			logger.WithError(err).Debug("malformed event")
			return
		}
		s.acceptHelp(params)

	case realtime.EventCompleteRequest:
		var params realtime.CompleteRequest
		if err := e.Decode(&params); err != nil {
			logger.WithError(err).Debug("malformed event")
			return
		}
		s.completeHelp(params)

	case realtime.EventSendMessage:
		var params schema.NewMessage
		if err := e.Decode(&params); err != nil {
			logger.WithError(err).Debug("malformed event")
			return
		}
		if _, err := s.storeMessage(params); err != nil {
			logger.WithError(err).Debug("message ignored")
		}

	default:
		logger.Debug("unknown event")
	}
}
