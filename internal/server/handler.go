package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/username/day-range-counter/internal/config"
	"github.com/username/day-range-counter/internal/dayrange"
	"github.com/username/day-range-counter/pkg/dateutil"
	"go.uber.org/zap"
)

// countRequest is the submitted form. Unset switches and days fall back to configuration,
// except that sending days without include_all_days turns "all days" off.
type countRequest struct {
	Start          string   `form:"start" json:"start" binding:"required"`
	End            string   `form:"end" json:"end" binding:"required"`
	Days           []string `form:"days" json:"days"`
	IncludeAllDays *bool    `form:"include_all_days" json:"include_all_days"`
	IncludeEndDay  *bool    `form:"include_end_day" json:"include_end_day"`
}

type countResponse struct {
	Days           int            `json:"days"`
	Valid          bool           `json:"valid"`
	Start          dateutil.Date  `json:"start"`
	End            dateutil.Date  `json:"end"`
	IncludeAllDays bool           `json:"include_all_days"`
	IncludeEndDay  bool           `json:"include_end_day"`
	Weekdays       []string       `json:"weekdays"`
	ByWeekday      map[string]int `json:"by_weekday"`
}

type weekdayInfo struct {
	Label string `json:"label"`
	Name  string `json:"name"`
}

// CountHandler serves the day counting form
type CountHandler struct {
	defaults config.CounterConfig
	logger   *zap.Logger
}

// NewCountHandler creates a handler using defaults for anything a request leaves unset
func NewCountHandler(defaults config.CounterConfig, logger *zap.Logger) *CountHandler {
	return &CountHandler{
		defaults: defaults,
		logger:   logger,
	}
}

// Count handles GET and POST /count
func (h *CountHandler) Count(c *gin.Context) {
	var req countRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	query, err := h.buildQuery(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tally := dayrange.TallyOf(query)

	h.logger.Info("Days counted",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Stringer("start", query.Start),
		zap.Stringer("end", query.End),
		zap.Stringer("weekdays", query.Effective()),
		zap.Bool("include_end_day", query.IncludeEndDay),
		zap.Bool("valid", tally.Valid),
		zap.Int("days", tally.Total))

	c.JSON(http.StatusOK, newCountResponse(query, tally))
}

// Weekdays handles GET /weekdays
func (h *CountHandler) Weekdays(c *gin.Context) {
	days := make([]weekdayInfo, 0, len(dayrange.AllWeekdays))
	for _, day := range dayrange.AllWeekdays {
		days = append(days, weekdayInfo{Label: day.Label(), Name: day.String()})
	}
	c.JSON(http.StatusOK, gin.H{"weekdays": days})
}

func (h *CountHandler) buildQuery(req countRequest) (dayrange.Query, error) {
	start, err := dateutil.ParseDate(req.Start)
	if err != nil {
		return dayrange.Query{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := dateutil.ParseDate(req.End)
	if err != nil {
		return dayrange.Query{}, fmt.Errorf("invalid end date: %w", err)
	}

	counter := h.defaults
	if req.Days != nil {
		if _, err := dayrange.ParseWeekdays(req.Days...); err != nil {
			return dayrange.Query{}, fmt.Errorf("invalid days: %w", err)
		}
		counter.Weekdays = req.Days
		counter.IncludeAllDays = false
	}
	if req.IncludeAllDays != nil {
		counter.IncludeAllDays = *req.IncludeAllDays
	}
	if req.IncludeEndDay != nil {
		counter.IncludeEndDay = *req.IncludeEndDay
	}

	return counter.Selection().Query(start, end), nil
}

func newCountResponse(query dayrange.Query, tally dayrange.Tally) countResponse {
	effective := query.Effective()

	resp := countResponse{
		Days:           tally.Total,
		Valid:          tally.Valid,
		Start:          query.Start,
		End:            query.End,
		IncludeAllDays: query.IncludeAllDays,
		IncludeEndDay:  query.IncludeEndDay,
		Weekdays:       make([]string, 0, 7),
		ByWeekday:      make(map[string]int, 7),
	}
	for _, day := range effective.Days() {
		resp.Weekdays = append(resp.Weekdays, day.Label())
		resp.ByWeekday[day.Label()] = tally.Of(day)
	}
	return resp
}
