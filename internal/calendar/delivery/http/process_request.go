package http

import (
	"github.com/gin-gonic/gin"

	"serava-assistant/internal/calendar"
)

type createEventReq struct {
	Title   string `json:"title" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time"`
	EndDate string `json:"end_date"`
}

func (req createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		Title:   req.Title,
		Date:    req.Date,
		Time:    req.Time,
		EndDate: req.EndDate,
	}
}

type updateEventReq struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time"`
}

func (req updateEventReq) toInput(eventID string) calendar.UpdateEventInput {
	return calendar.UpdateEventInput{
		EventID: eventID,
		Title:   req.Title,
		Date:    req.Date,
		Time:    req.Time,
	}
}

func (h *handler) processCreateEventRequest(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return createEventReq{}, err
	}
	return req, nil
}

func (h *handler) processUpdateEventRequest(c *gin.Context) (updateEventReq, error) {
	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return updateEventReq{}, err
	}
	return req, nil
}
