package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/domain/medication"
	"github.com/helioslabs/vitaltrack/internal/service"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
)

type MedicationHandler struct {
	medSvc    *service.MedicationService
	collector *metrics.Collector
}

func NewMedicationHandler(medSvc *service.MedicationService, collector *metrics.Collector) *MedicationHandler {
	return &MedicationHandler{medSvc: medSvc, collector: collector}
}

type createMedicationRequest struct {
	Name         string     `json:"name" binding:"required"`
	Dosage       string     `json:"dosage"`
	Frequency    string     `json:"frequency"`
	Times        []string   `json:"times"`
	Instructions string     `json:"instructions"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
}

func (h *MedicationHandler) Create(c *gin.Context) {
	var req createMedicationRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.medSvc.Add(c.Request.Context(), &medication.CreateMedicationCommand{
		UserID:       callerID(c),
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Times:        req.Times,
		Instructions: req.Instructions,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, m)
}

func (h *MedicationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	m, err := h.medSvc.Get(c.Request.Context(), id, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, m)
}

type updateMedicationRequest struct {
	Name         *string    `json:"name"`
	Dosage       *string    `json:"dosage"`
	Frequency    *string    `json:"frequency"`
	Times        *[]string  `json:"times"`
	Instructions *string    `json:"instructions"`
	EndDate      *time.Time `json:"end_date"`
	Active       *bool      `json:"active"`
}

func (h *MedicationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateMedicationRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.medSvc.Update(c.Request.Context(), id, callerID(c), &medication.UpdateMedicationCommand{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Times:        req.Times,
		Instructions: req.Instructions,
		EndDate:      req.EndDate,
		Active:       req.Active,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, m)
}

func (h *MedicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.medSvc.Remove(c.Request.Context(), id, callerID(c), c.ClientIP()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MedicationHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	meds, err := h.medSvc.ListByUser(c.Request.Context(), callerID(c), activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, meds)
}

type createDoseLogRequest struct {
	Taken         bool       `json:"taken"`
	ScheduledTime time.Time  `json:"scheduled_time" binding:"required"`
	TakenTime     *time.Time `json:"taken_time"`
	Notes         string     `json:"notes"`
}

func (h *MedicationHandler) LogDose(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req createDoseLogRequest
	if !bindJSON(c, &req) {
		return
	}

	l, err := h.medSvc.LogDose(c.Request.Context(), &medication.CreateLogCommand{
		MedicationID:  id,
		UserID:        callerID(c),
		Taken:         req.Taken,
		ScheduledTime: req.ScheduledTime,
		TakenTime:     req.TakenTime,
		Notes:         req.Notes,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	outcome := "skipped"
	if l.Taken {
		outcome = "taken"
	}
	h.collector.DosesLoggedTotal.WithLabelValues(outcome).Inc()
	respondCreated(c, l)
}

func (h *MedicationHandler) ListLogs(c *gin.Context) {
	q := &medication.ListLogsQuery{
		UserID:   callerID(c),
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	q.MedicationID = &id
	if q.DateFrom, ok = parseQueryDate(c, "from"); !ok {
		return
	}
	if q.DateTo, ok = parseQueryDate(c, "to"); !ok {
		return
	}

	paged, err := h.medSvc.ListLogs(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, pagedResponse[*medication.Log]{
		Items:      paged.Logs,
		TotalCount: paged.TotalCount,
		Page:       paged.Page,
		PageSize:   paged.PageSize,
		TotalPages: paged.TotalPages,
	})
}

type adherenceResponse struct {
	AdherencePct int `json:"adherence_pct"`
}

func (h *MedicationHandler) Adherence(c *gin.Context) {
	q := &medication.ListLogsQuery{UserID: callerID(c)}
	if raw := c.Query("medication_id"); raw != "" {
		id := parseQueryInt(c, "medication_id", 0)
		if id <= 0 {
			respondError(c, http.StatusBadRequest, "invalid medication_id")
			return
		}
		uid := uint(id)
		q.MedicationID = &uid
	}
	var ok bool
	if q.DateFrom, ok = parseQueryDate(c, "from"); !ok {
		return
	}
	if q.DateTo, ok = parseQueryDate(c, "to"); !ok {
		return
	}

	pct, err := h.medSvc.Adherence(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, adherenceResponse{AdherencePct: pct})
}
