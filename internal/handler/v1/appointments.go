package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/domain/appointment"
	"github.com/helioslabs/vitaltrack/internal/service"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
)

type AppointmentHandler struct {
	apptSvc   *service.AppointmentService
	collector *metrics.Collector
}

func NewAppointmentHandler(apptSvc *service.AppointmentService, collector *metrics.Collector) *AppointmentHandler {
	return &AppointmentHandler{apptSvc: apptSvc, collector: collector}
}

type createAppointmentRequest struct {
	Title        string    `json:"title" binding:"required"`
	Doctor       string    `json:"doctor"`
	Location     string    `json:"location"`
	Date         time.Time `json:"date" binding:"required"`
	DurationMins int       `json:"duration_mins"`
	Notes        string    `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.DurationMins == 0 {
		req.DurationMins = 30
	}

	a, err := h.apptSvc.Schedule(c.Request.Context(), &appointment.CreateAppointmentCommand{
		UserID:       callerID(c),
		Title:        req.Title,
		Doctor:       req.Doctor,
		Location:     req.Location,
		Date:         req.Date,
		DurationMins: req.DurationMins,
		Notes:        req.Notes,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.AppointmentsTotal.WithLabelValues(string(a.Status)).Inc()
	respondCreated(c, a)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.apptSvc.Get(c.Request.Context(), id, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

type updateAppointmentRequest struct {
	Title        *string    `json:"title"`
	Doctor       *string    `json:"doctor"`
	Location     *string    `json:"location"`
	Date         *time.Time `json:"date"`
	DurationMins *int       `json:"duration_mins"`
	Notes        *string    `json:"notes"`
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.apptSvc.Update(c.Request.Context(), id, callerID(c), &appointment.UpdateAppointmentCommand{
		Title:        req.Title,
		Doctor:       req.Doctor,
		Location:     req.Location,
		Date:         req.Date,
		DurationMins: req.DurationMins,
		Notes:        req.Notes,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.apptSvc.Confirm(c.Request.Context(), id, callerID(c), c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.AppointmentsTotal.WithLabelValues(string(a.Status)).Inc()
	respondOK(c, a)
}

type cancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req cancelAppointmentRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	a, err := h.apptSvc.Cancel(c.Request.Context(), id, callerID(c), req.Reason, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.AppointmentsTotal.WithLabelValues(string(a.Status)).Inc()
	respondOK(c, a)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.apptSvc.Complete(c.Request.Context(), id, callerID(c), c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.AppointmentsTotal.WithLabelValues(string(a.Status)).Inc()
	respondOK(c, a)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.apptSvc.Delete(c.Request.Context(), id, callerID(c), c.ClientIP()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	q := &appointment.ListAppointmentsQuery{
		UserID:   callerID(c),
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}
	if raw := c.Query("status"); raw != "" {
		st := appointment.Status(raw)
		if !st.IsValid() {
			respondError(c, http.StatusBadRequest, "invalid status filter")
			return
		}
		q.Status = &st
	}
	var ok bool
	if q.DateFrom, ok = parseQueryDate(c, "from"); !ok {
		return
	}
	if q.DateTo, ok = parseQueryDate(c, "to"); !ok {
		return
	}

	paged, err := h.apptSvc.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, pagedResponse[*appointment.Appointment]{
		Items:      paged.Appointments,
		TotalCount: paged.TotalCount,
		Page:       paged.Page,
		PageSize:   paged.PageSize,
		TotalPages: paged.TotalPages,
	})
}
