package http

import (
	"github.com/gin-gonic/gin"

	"serava-assistant/internal/middleware"
	"serava-assistant/pkg/response"
)

// ListEvents godoc
// @Summary     List upcoming events
// @Description Returns the caller's upcoming events inside the lookahead window.
// @Tags        Calendar
// @Produce     json
// @Param       X-User-ID header string true "User identity"
// @Success     200 {object} response.Resp{data=[]eventItem}
// @Failure     401 {object} response.Resp "Authentication failed"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.uc.ListEvents(ctx, middleware.Scope(c))
	if err != nil {
		h.l.Errorf(ctx, "calendar.http.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventItems(events))
}

// CreateEvent godoc
// @Summary     Create an event
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string         true "User identity"
// @Param       body      body   createEventReq true "Event"
// @Success     200 {object} response.Resp{data=eventItem}
// @Failure     400 {object} response.Resp "Invalid request"
// @Failure     401 {object} response.Resp "Authentication failed"
// @Router      /api/v1/calendar/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.CreateEvent: invalid request: %v", err)
		response.Error(c, errInvalidRequest)
		return
	}

	ev, err := h.uc.CreateEvent(ctx, middleware.Scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "calendar.http.CreateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventItem(*ev))
}

// UpdateEvent godoc
// @Summary     Update an event
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string         true "User identity"
// @Param       id        path   string         true "Event id"
// @Param       body      body   updateEventReq true "Event"
// @Success     200 {object} response.Resp{data=eventItem}
// @Failure     400 {object} response.Resp "Invalid request"
// @Failure     401 {object} response.Resp "Authentication failed"
// @Router      /api/v1/calendar/events/{id} [PUT]
func (h *handler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateEventRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.UpdateEvent: invalid request: %v", err)
		response.Error(c, errInvalidRequest)
		return
	}

	ev, err := h.uc.UpdateEvent(ctx, middleware.Scope(c), req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "calendar.http.UpdateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventItem(*ev))
}

// DeleteEvent godoc
// @Summary     Delete an event
// @Tags        Calendar
// @Produce     json
// @Param       X-User-ID header string true "User identity"
// @Param       id        path   string true "Event id"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Authentication failed"
// @Router      /api/v1/calendar/events/{id} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteEvent(ctx, middleware.Scope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "calendar.http.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
