package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stratagix/pkg/auth"
	"stratagix/pkg/calendar"
	"stratagix/pkg/content"
	"stratagix/pkg/logging"
	"stratagix/pkg/provider"
	"stratagix/pkg/trends"
)

type PlannerHandler struct {
	snapshot *provider.Snapshot
	logger   logging.Logger
	metrics  *PlannerMetrics
	now      func() time.Time
}

func NewPlannerHandler(snapshot *provider.Snapshot, logger logging.Logger, metrics *PlannerMetrics, now func() time.Time) *PlannerHandler {
	if now == nil {
		now = time.Now
	}
	return &PlannerHandler{
		snapshot: snapshot,
		logger:   logger,
		metrics:  metrics,
		now:      now,
	}
}

// Register mounts the planner API under /api behind the session check.
func (h *PlannerHandler) Register(r gin.IRouter, sessions auth.SessionResolver) {
	api := r.Group("/api", auth.SessionMiddleware(sessions))
	api.GET("/content", h.ListContent)
	api.GET("/content/upcoming", h.Upcoming)
	api.GET("/calendar", h.Calendar)
	api.GET("/trends", h.ListTrends)
	api.GET("/trends/:id", h.GetTrend)
}

func (h *PlannerHandler) today() content.Date {
	return content.DateOf(h.now())
}

func (h *PlannerHandler) badRequest(c *gin.Context, endpoint string, err error) {
	h.metrics.Inc(endpoint, "bad_request")
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// ListContent answers day, month and range lookups. With no selector it
// returns the whole registry; combining date, month and from/to is a 400.
func (h *PlannerHandler) ListContent(c *gin.Context) {
	const endpoint = "content"
	reg := h.snapshot.Registry

	selectors := 0
	for _, set := range []bool{
		c.Query("date") != "",
		c.Query("month") != "",
		c.Query("from") != "" || c.Query("to") != "",
	} {
		if set {
			selectors++
		}
	}
	if selectors > 1 {
		h.badRequest(c, endpoint, errConflictingSelectors)
		return
	}

	var items []content.Item
	switch {
	case c.Query("date") != "":
		d, err := content.ParseDate(c.Query("date"))
		if err != nil {
			h.badRequest(c, endpoint, err)
			return
		}
		items = reg.ItemsOnDay(d)
	case c.Query("month") != "":
		ym, err := content.ParseYearMonth(c.Query("month"))
		if err != nil {
			h.badRequest(c, endpoint, err)
			return
		}
		items = reg.ItemsInMonth(ym)
	case c.Query("from") != "" || c.Query("to") != "":
		from, err := content.ParseDate(c.Query("from"))
		if err != nil {
			h.badRequest(c, endpoint, err)
			return
		}
		to, err := content.ParseDate(c.Query("to"))
		if err != nil {
			h.badRequest(c, endpoint, err)
			return
		}
		items = reg.ItemsInRange(from, to)
	default:
		items = reg.Items()
	}

	items, err := filterPlatform(items, c.Query("platform"))
	if err != nil {
		h.badRequest(c, endpoint, err)
		return
	}

	h.metrics.Inc(endpoint, "ok")
	c.JSON(http.StatusOK, gin.H{
		"data": items,
		"meta": gin.H{"count": len(items)},
	})
}

func filterPlatform(items []content.Item, raw string) ([]content.Item, error) {
	if raw == "" {
		return items, nil
	}
	p, err := content.ParsePlatform(raw)
	if err != nil {
		return nil, err
	}
	if p == content.PlatformAll {
		return items, nil
	}
	return content.FilterByPlatform(items, p), nil
}

// Upcoming lists items on or after ?from (default today), soonest first.
func (h *PlannerHandler) Upcoming(c *gin.Context) {
	const endpoint = "upcoming"
	from := h.today()
	if raw := c.Query("from"); raw != "" {
		d, err := content.ParseDate(raw)
		if err != nil {
			h.badRequest(c, endpoint, err)
			return
		}
		from = d
	}
	limit, err := intQuery(c, "limit", 0)
	if err != nil || limit < 0 {
		h.badRequest(c, endpoint, errInvalidParam("limit"))
		return
	}

	items := h.snapshot.Registry.Upcoming(from, limit)
	h.metrics.Inc(endpoint, "ok")
	c.JSON(http.StatusOK, gin.H{
		"data": items,
		"meta": gin.H{"count": len(items), "from": from},
	})
}

// Calendar builds the month grid. The caller supplies all view state.
func (h *PlannerHandler) Calendar(c *gin.Context) {
	const endpoint = "calendar"
	today := h.today()
	opts := calendar.Options{Month: today.YearMonth(), Today: today}

	if raw := c.Query("month"); raw != "" {
		ym, err := content.ParseYearMonth(raw)
		if err != nil {
			h.badRequest(c, endpoint, err)
			return
		}
		opts.Month = ym
	}
	if raw := c.Query("selected"); raw != "" {
		d, err := content.ParseDate(raw)
		if err != nil {
			h.badRequest(c, endpoint, err)
			return
		}
		opts.Selected = d
	}
	view, err := calendar.ParseView(c.Query("view"))
	if err != nil {
		h.badRequest(c, endpoint, err)
		return
	}
	opts.View = view
	if opts.PreviewLimit, err = intQuery(c, "preview", 0); err != nil {
		h.badRequest(c, endpoint, errInvalidParam("preview"))
		return
	}

	grid, err := calendar.Build(h.snapshot.Registry, opts)
	if err != nil {
		h.badRequest(c, endpoint, err)
		return
	}

	h.metrics.Inc(endpoint, "ok")
	c.JSON(http.StatusOK, gin.H{
		"data":     grid,
		"weekdays": calendar.Weekdays,
	})
}

// ListTrends filters the catalog by ?category and ?q.
func (h *PlannerHandler) ListTrends(c *gin.Context) {
	const endpoint = "trends"
	category := c.DefaultQuery("category", trends.AllCategories)
	if !knownCategory(category) {
		h.badRequest(c, endpoint, errInvalidParam("category"))
		return
	}

	all := h.snapshot.Trends
	matches := trends.Filter(all, category, c.Query("q"))
	meta := gin.H{
		"count":  len(matches),
		"total":  len(all),
		"counts": trends.CountByCategory(all),
	}
	if len(matches) == 0 {
		meta["empty"] = gin.H{"title": trends.EmptyStateTitle, "message": trends.EmptyStateMessage}
	}

	h.metrics.Inc(endpoint, "ok")
	c.JSON(http.StatusOK, gin.H{"data": matches, "meta": meta})
}

func (h *PlannerHandler) GetTrend(c *gin.Context) {
	const endpoint = "trend"
	entry, ok := trends.FindByID(h.snapshot.Trends, c.Param("id"))
	if !ok {
		h.metrics.Inc(endpoint, "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Trend not found"})
		return
	}
	h.metrics.Inc(endpoint, "ok")
	c.JSON(http.StatusOK, gin.H{"data": entry})
}

func knownCategory(category string) bool {
	for _, known := range trends.Categories {
		if trends.MatchCategory(trends.Entry{Category: known}, category) {
			return true
		}
	}
	return false
}

var errConflictingSelectors = errors.New("use only one of date, month or from/to")

type errInvalidParam string

func (e errInvalidParam) Error() string {
	return "invalid " + string(e) + " parameter"
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
