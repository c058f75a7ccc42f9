package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
	"github.com/geoshield-inc/geoshield-api/utils"
)

// sendMessage is the API for staff to message a single user
func (s *Server) sendMessage(c *gin.Context) {
	var params schema.NewMessage
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	m, err := s.storeMessage(params)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// storeMessage saves a message and announces it. It backs both the REST
// endpoint and the inbound sendMessage event.
func (s *Server) storeMessage(params schema.NewMessage) (*schema.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.store.SendMessage(params)
	if err != nil {
		return nil, err
	}

	s.counter("messages_sent").Inc(1)
	s.publish(realtime.EventNewMessage, m)

	return m, nil
}

// sendAlert sends an alert to a single user, or to every volunteer when
// no user or "all" is given
func (s *Server) sendAlert(c *gin.Context) {
	var params schema.NewMessage
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.store.SendAlert(params)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	for _, alert := range alerts {
		a := alert
		s.publish(realtime.EventNewMessage, &a)
	}
	s.counter("alerts_sent").Inc(int64(len(alerts)))

	if params.ToUserID == "" || params.ToUserID == schema.AllUsers {
		c.JSON(http.StatusOK, gin.H{"success": true, "alerts": alerts})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "alert": alerts[0]})
}

// forwardAlert points a set of volunteers at a request. Without a message
// the alert says which type of help is needed.
func (s *Server) forwardAlert(c *gin.Context) {
	var params schema.ForwardRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.store.GetRequest(params.RequestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if params.Message == "" {
		params.Message = utils.Localize(s.options.Language, utils.MessageForwardDefault, map[string]interface{}{
			"Type": string(req.Type),
		})
	}

	alerts, err := s.store.ForwardAlert(params)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	for _, alert := range alerts {
		a := alert
		s.publish(realtime.EventAlertForwarded, &a)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "alerts": alerts})
}

// listMessages returns the inbox of a user
func (s *Server) listMessages(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListMessages(c.Param("userID")))
}

func (s *Server) markMessageRead(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.store.MarkMessageRead(c.Param("messageID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.publish(realtime.EventMessageRead, m)

	c.JSON(http.StatusOK, m)
}
