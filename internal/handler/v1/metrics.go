package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/domain/metric"
	"github.com/helioslabs/vitaltrack/internal/service"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
)

type MetricHandler struct {
	metricSvc *service.MetricService
	collector *metrics.Collector
}

func NewMetricHandler(metricSvc *service.MetricService, collector *metrics.Collector) *MetricHandler {
	return &MetricHandler{metricSvc: metricSvc, collector: collector}
}

type createMetricRequest struct {
	Type  string    `json:"type" binding:"required"`
	Value string    `json:"value" binding:"required"`
	Date  time.Time `json:"date" binding:"required"`
	Notes string    `json:"notes"`
}

func (h *MetricHandler) Create(c *gin.Context) {
	var req createMetricRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.metricSvc.Record(c.Request.Context(), &metric.CreateMetricCommand{
		UserID: callerID(c),
		Type:   metric.Type(req.Type),
		Value:  req.Value,
		Date:   req.Date,
		Notes:  req.Notes,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.MetricsRecordedTotal.WithLabelValues(string(m.Type)).Inc()
	respondCreated(c, m)
}

func (h *MetricHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	m, err := h.metricSvc.Get(c.Request.Context(), id, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, m)
}

type updateMetricRequest struct {
	Value *string    `json:"value"`
	Date  *time.Time `json:"date"`
	Notes *string    `json:"notes"`
}

func (h *MetricHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateMetricRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.metricSvc.Update(c.Request.Context(), id, callerID(c), &metric.UpdateMetricCommand{
		Value: req.Value,
		Date:  req.Date,
		Notes: req.Notes,
	}, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, m)
}

func (h *MetricHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.metricSvc.Delete(c.Request.Context(), id, callerID(c), c.ClientIP()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type pagedResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func (h *MetricHandler) List(c *gin.Context) {
	q := &metric.ListMetricsQuery{
		UserID:   callerID(c),
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", 20),
	}
	if raw := c.Query("type"); raw != "" {
		t := metric.Type(raw)
		if !t.IsValid() {
			respondError(c, http.StatusBadRequest, "invalid type filter")
			return
		}
		q.Type = &t
	}
	var ok bool
	if q.DateFrom, ok = parseQueryDate(c, "from"); !ok {
		return
	}
	if q.DateTo, ok = parseQueryDate(c, "to"); !ok {
		return
	}

	paged, err := h.metricSvc.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, pagedResponse[*metric.HealthMetric]{
		Items:      paged.Metrics,
		TotalCount: paged.TotalCount,
		Page:       paged.Page,
		PageSize:   paged.PageSize,
		TotalPages: paged.TotalPages,
	})
}
