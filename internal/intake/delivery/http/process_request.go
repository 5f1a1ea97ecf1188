package http

import (
	"github.com/gin-gonic/gin"
)

// processFromTextReq binds and validates the text intake body.
func (h *handler) processFromTextReq(c *gin.Context) (fromTextReq, error) {
	var req fromTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFromAudioReq binds and validates the dictation intake body.
func (h *handler) processFromAudioReq(c *gin.Context) (fromAudioReq, error) {
	var req fromAudioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
