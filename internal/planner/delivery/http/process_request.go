package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "voice-sprint-planner/pkg/errors"
)

// processSelectSprintReq binds and validates the sprint selection body.
func (h *handler) processSelectSprintReq(c *gin.Context) (selectSprintReq, error) {
	var req selectSprintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSelectPersonReq binds the person filter body. An empty id is valid
// and clears the filter.
func (h *handler) processSelectPersonReq(c *gin.Context) (selectPersonReq, error) {
	var req selectPersonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processMoveTaskReq binds the move body and the task id URI param.
func (h *handler) processMoveTaskReq(c *gin.Context) (moveTaskReq, error) {
	var req moveTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, pkgErrors.NewHTTPError(400, "task id is required")
	}
	return req, nil
}

// processSaveTaskReq binds the partial edit body and the task id URI param.
func (h *handler) processSaveTaskReq(c *gin.Context) (saveTaskReq, error) {
	var req saveTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, pkgErrors.NewHTTPError(400, "task id is required")
	}
	return req, nil
}
