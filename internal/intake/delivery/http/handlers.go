package http

import (
	"github.com/gin-gonic/gin"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/pkg/response"
)

// FromText godoc
// @Summary     Create a task from text
// @Description Restructures a typed description into a standard task spec and creates it in the tracking service.
// @Tags        Intake
// @Accept      json
// @Produce     json
// @Param       body body fromTextReq true "Task description"
// @Success     200 {object} intakeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intake/text [POST]
func (h *handler) FromText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFromTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FromText(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FromText: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newIntakeResp(output))
}

// FromAudio godoc
// @Summary     Create a task from dictation
// @Description Transcribes a dictation clip and creates a task from the transcript.
// @Tags        Intake
// @Accept      json
// @Produce     json
// @Param       body body fromAudioReq true "Dictation clip"
// @Success     200 {object} intakeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intake/dictation [POST]
func (h *handler) FromAudio(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFromAudioReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FromAudio(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FromAudio: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newIntakeResp(output))
}
