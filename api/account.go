package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
)

// listUsers returns every account, without passwords
func (s *Server) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListUsers())
}

// signup is the API for registering a new account
func (s *Server) signup(c *gin.Context) {
	logger := log.WithField("api", "signup")

	var params schema.SignupRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.store.Signup(params)
	if err != nil {
		logger.WithError(err).Debug("signup rejected")
		abortWithStoreError(c, err)
		return
	}

	s.publish(realtime.EventUserRegistered, u)

	c.JSON(http.StatusOK, u)
}

// login checks the name and password of an account
func (s *Server) login(c *gin.Context) {
	var params struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	u, err := s.store.Login(params.Name, params.Password)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
