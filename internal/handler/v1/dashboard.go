package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioslabs/vitaltrack/internal/service"
	"github.com/helioslabs/vitaltrack/pkg/metrics"
)

type ReportHandler struct {
	reportSvc *service.ReportService
	collector *metrics.Collector
}

func NewReportHandler(reportSvc *service.ReportService, collector *metrics.Collector) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, collector: collector}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.reportSvc.BuildDashboard(c.Request.Context(), callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReportsBuiltTotal.WithLabelValues("dashboard").Inc()
	respondOK(c, d)
}

// reportWindow resolves the optional from/to query params; absent both, the
// window is the trailing 30 days.
func (h *ReportHandler) reportWindow(c *gin.Context) (from, to *time.Time, ok bool) {
	if from, ok = parseQueryDate(c, "from"); !ok {
		return nil, nil, false
	}
	if to, ok = parseQueryDate(c, "to"); !ok {
		return nil, nil, false
	}
	if from == nil && to == nil {
		now := time.Now()
		start := now.AddDate(0, 0, -30)
		from, to = &start, &now
	}
	return from, to, true
}

func (h *ReportHandler) Weight(c *gin.Context) {
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	rep, err := h.reportSvc.Weight(c.Request.Context(), callerID(c), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReportsBuiltTotal.WithLabelValues("weight").Inc()
	respondOK(c, rep)
}

func (h *ReportHandler) BloodPressure(c *gin.Context) {
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	rep, err := h.reportSvc.BloodPressure(c.Request.Context(), callerID(c), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReportsBuiltTotal.WithLabelValues("blood_pressure").Inc()
	respondOK(c, rep)
}

func (h *ReportHandler) HeartRate(c *gin.Context) {
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	rep, err := h.reportSvc.HeartRate(c.Request.Context(), callerID(c), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReportsBuiltTotal.WithLabelValues("heart_rate").Inc()
	respondOK(c, rep)
}

func (h *ReportHandler) Sleep(c *gin.Context) {
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	rep, err := h.reportSvc.Sleep(c.Request.Context(), callerID(c), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReportsBuiltTotal.WithLabelValues("sleep").Inc()
	respondOK(c, rep)
}

func (h *ReportHandler) Nutrition(c *gin.Context) {
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	rep, err := h.reportSvc.Nutrition(c.Request.Context(), callerID(c), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReportsBuiltTotal.WithLabelValues("nutrition").Inc()
	respondOK(c, rep)
}

func (h *ReportHandler) Exercise(c *gin.Context) {
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	rep, err := h.reportSvc.Exercise(c.Request.Context(), callerID(c), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReportsBuiltTotal.WithLabelValues("exercise").Inc()
	respondOK(c, rep)
}

func (h *ReportHandler) Score(c *gin.Context) {
	score, err := h.reportSvc.Score(c.Request.Context(), callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.ReportsBuiltTotal.WithLabelValues("score").Inc()
	respondOK(c, score)
}
