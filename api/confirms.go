package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoshield-inc/geoshield-api/utils"
)

// sendVerificationCode issues a code for a phone. There is no SMS
// gateway, the code is returned to the caller instead.
func (s *Server) sendVerificationCode(c *gin.Context) {
	var params struct {
		Phone string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	v, err := s.store.SendCode(params.Phone)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	log.WithField("phone", v.Phone).Infof("verification code: %s", v.Code)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": utils.Localize(s.options.Language, utils.MessageVerificationSent, nil),
		"code":    v.Code,
	})
}

// verifyCode consumes the code sent to a phone
func (s *Server) verifyCode(c *gin.Context) {
	var params struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.VerifyCode(params.Phone, params.Code); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
