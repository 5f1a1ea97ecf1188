package http

import (
	"github.com/gin-gonic/gin"

	"voice-sprint-planner/internal/model"
	pkgErrors "voice-sprint-planner/pkg/errors"
	"voice-sprint-planner/pkg/response"
)

// Bootstrap godoc
// @Summary     Bootstrap the planner
// @Description Selects the initial sprint and person and loads the sprint's tasks.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Success     200 {object} bootstrapResp
// @Failure     404 {object} response.Resp "No usable sprint in the calendar"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/bootstrap [POST]
func (h *handler) Bootstrap(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Bootstrap(ctx, model.Scope{})
	if err != nil {
		h.l.Errorf(ctx, "uc.Bootstrap: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBootstrapResp(output))
}

// Agenda godoc
// @Summary     Get the sprint agenda
// @Description Returns the 7-day agenda for the selected sprint and person filter.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Success     200 {object} agendaResp
// @Failure     409 {object} response.Resp "No sprint selected"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/agenda [GET]
func (h *handler) Agenda(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Agenda(ctx, model.Scope{})
	if err != nil {
		h.l.Errorf(ctx, "uc.Agenda: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAgendaResp(output))
}

// SelectSprint godoc
// @Summary     Select a sprint
// @Description Switches the selected sprint and reloads its tasks. A newer selection supersedes an older one still loading.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body selectSprintReq true "Sprint selection"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Sprint not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sprint [POST]
func (h *handler) SelectSprint(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectSprintReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SelectSprint(ctx, model.Scope{}, req.SprintID); err != nil {
		h.l.Errorf(ctx, "uc.SelectSprint: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SelectPerson godoc
// @Summary     Select a person filter
// @Description Changes the assignee filter. An empty id clears the filter. No refetch happens.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body selectPersonReq true "Person selection"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Person not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/person [POST]
func (h *handler) SelectPerson(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectPersonReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SelectPerson(ctx, model.Scope{}, req.PersonID); err != nil {
		h.l.Errorf(ctx, "uc.SelectPerson: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Sprints godoc
// @Summary     List sprints
// @Description Returns the sprint calendar ordered by window start.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Success     200 {object} sprintsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sprints [GET]
func (h *handler) Sprints(c *gin.Context) {
	ctx := c.Request.Context()

	sprints, err := h.uc.Sprints(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Sprints: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSprintsResp(sprints))
}

// Members godoc
// @Summary     List team members
// @Description Returns the team directory ordered by name.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Success     200 {object} membersResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/members [GET]
func (h *handler) Members(c *gin.Context) {
	ctx := c.Request.Context()

	members, err := h.uc.Members(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Members: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMembersResp(members))
}

// MoveTask godoc
// @Summary     Move a task
// @Description Moves a task to a sprint day or to the unplanned bucket, optimistically with rollback on remote failure.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body moveTaskReq true "Move target"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     409 {object} response.Resp "Task has a mutation pending"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{id}/move [POST]
func (h *handler) MoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.MoveTask(ctx, model.Scope{}, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.MoveTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SaveTask godoc
// @Summary     Edit a task
// @Description Applies a partial edit to a task. All fields are optional; at least one must be present.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body saveTaskReq true "Fields to update"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     409 {object} response.Resp "Task has a mutation pending"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{id} [PUT]
func (h *handler) SaveTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SaveTaskEdits(ctx, model.Scope{}, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SaveTaskEdits: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// AdvanceTask godoc
// @Summary     Move a task to the next sprint
// @Description Re-homes a task into the next sprint's list, re-dating it only when it was scheduled inside the current window.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Task or next sprint not found"
// @Failure     409 {object} response.Resp "Task has a mutation pending"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{id}/advance [POST]
func (h *handler) AdvanceTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "task id is required"), nil)
		return
	}

	if err := h.uc.AdvanceTaskToNextSprint(ctx, model.Scope{}, id); err != nil {
		h.l.Errorf(ctx, "uc.AdvanceTaskToNextSprint: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
