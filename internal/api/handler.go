package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/store"
	"github.com/lumina-labs/lead-funnel/internal/store/schema"
)

const (
	defaultLeadLimit  = 50
	maxLeadLimit      = 200
	defaultErrorLimit = 50
	maxErrorLimit     = 200
	defaultMetricDays = 7
	maxMetricDays     = 90
)

// Handler serves the read-side stats API over the funnel store
type Handler struct {
	store store.Store
}

// NewHandler creates a new API handler
func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

// leadDTO is the JSON shape of one lead
type leadDTO struct {
	ID              int64      `json:"id"`
	ContractAddress string     `json:"contract_address"`
	Name            string     `json:"name"`
	Symbol          string     `json:"symbol"`
	Chain           string     `json:"chain"`
	Website         *string    `json:"website,omitempty"`
	TelegramURL     *string    `json:"telegram_url,omitempty"`
	TwitterURL      *string    `json:"twitter_url,omitempty"`
	Volume24h       float64    `json:"volume_24h"`
	Liquidity       float64    `json:"liquidity"`
	MarketCap       float64    `json:"market_cap"`
	Indexed         *bool      `json:"indexed,omitempty"`
	Status          string     `json:"status"`
	JoinAttempts    int        `json:"join_attempts"`
	DiscoveredAt    time.Time  `json:"discovered_at"`
	IndexCheckedAt  *time.Time `json:"index_checked_at,omitempty"`
}

func toLeadDTO(lead *schema.Lead) leadDTO {
	return leadDTO{
		ID:              lead.ID,
		ContractAddress: lead.ContractAddress,
		Name:            lead.Name,
		Symbol:          lead.Symbol,
		Chain:           lead.Chain,
		Website:         lead.Website,
		TelegramURL:     lead.TelegramURL,
		TwitterURL:      lead.TwitterURL,
		Volume24h:       lead.Volume24h,
		Liquidity:       lead.Liquidity,
		MarketCap:       lead.MarketCap,
		Indexed:         lead.Indexed,
		Status:          string(lead.Status),
		JoinAttempts:    lead.JoinAttempts,
		DiscoveredAt:    lead.DiscoveredAt,
		IndexCheckedAt:  lead.IndexCheckedAt,
	}
}

// dailyMetricDTO is the JSON shape of one day's counters
type dailyMetricDTO struct {
	Date                string `json:"date"`
	TokensFound         int64  `json:"tokens_found"`
	TokensWithTelegram  int64  `json:"tokens_with_telegram"`
	UnindexedSitesFound int64  `json:"unindexed_sites_found"`
	GroupsJoined        int64  `json:"groups_joined"`
	JoinFailures        int64  `json:"join_failures"`
	AdminsFound         int64  `json:"admins_found"`
	MessagesSent        int64  `json:"dms_sent"`
	MessagesFailed      int64  `json:"dms_failed"`
	ResponsesReceived   int64  `json:"responses_received"`
	Conversions         int64  `json:"conversions"`
}

func toDailyMetricDTO(m *schema.DailyMetric) dailyMetricDTO {
	return dailyMetricDTO{
		Date:                m.Date.Format("2006-01-02"),
		TokensFound:         m.TokensFound,
		TokensWithTelegram:  m.TokensWithTelegram,
		UnindexedSitesFound: m.UnindexedSitesFound,
		GroupsJoined:        m.GroupsJoined,
		JoinFailures:        m.JoinFailures,
		AdminsFound:         m.AdminsFound,
		MessagesSent:        m.MessagesSent,
		MessagesFailed:      m.MessagesFailed,
		ResponsesReceived:   m.ResponsesReceived,
		Conversions:         m.Conversions,
	}
}

// errorEntryDTO is the JSON shape of one audit-log entry
type errorEntryDTO struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ErrorType string    `json:"error_type"`
	Message   string    `json:"message"`
	Context   string    `json:"context,omitempty"`
	Resolved  bool      `json:"resolved"`
}

func toErrorEntryDTO(e *schema.ErrorLogEntry) errorEntryDTO {
	return errorEntryDTO{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		ErrorType: e.ErrorType,
		Message:   e.Message,
		Context:   e.Context,
		Resolved:  e.Resolved,
	}
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSummaryStats returns all-time funnel aggregates
// GET /api/v1/stats/summary
func (h *Handler) GetSummaryStats(c *gin.Context) {
	stats, err := h.store.GetSummaryStats(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get summary stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDailyMetrics returns the last N days of counters, newest first
// GET /api/v1/metrics/daily?days=N
func (h *Handler) GetDailyMetrics(c *gin.Context) {
	days, err := parseBoundedInt(c.Query("days"), defaultMetricDays, maxMetricDays)
	if err != nil {
		respondBadRequest(c, "Invalid days parameter")
		return
	}

	metrics, err := h.store.GetMetricsRange(c.Request.Context(), days)
	if err != nil {
		respondInternalError(c, err, "Failed to get daily metrics")
		return
	}

	out := make([]dailyMetricDTO, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, toDailyMetricDTO(m))
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "metrics": out})
}

// ListLeads returns leads newest first, optionally filtered by funnel status
// GET /api/v1/leads?status=&limit=
func (h *Handler) ListLeads(c *gin.Context) {
	limit, err := parseBoundedInt(c.Query("limit"), defaultLeadLimit, maxLeadLimit)
	if err != nil {
		respondBadRequest(c, "Invalid limit parameter")
		return
	}

	var status *domain.LeadStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.LeadStatus(raw)
		if !s.Valid() {
			respondBadRequest(c, "Invalid status parameter")
			return
		}
		status = &s
	}

	leads, err := h.store.ListLeads(c.Request.Context(), status, limit)
	if err != nil {
		respondInternalError(c, err, "Failed to list leads")
		return
	}

	out := make([]leadDTO, 0, len(leads))
	for _, lead := range leads {
		out = append(out, toLeadDTO(lead))
	}
	c.JSON(http.StatusOK, gin.H{"leads": out})
}

// ListErrors returns the newest audit-log entries
// GET /api/v1/errors?limit=
func (h *Handler) ListErrors(c *gin.Context) {
	limit, err := parseBoundedInt(c.Query("limit"), defaultErrorLimit, maxErrorLimit)
	if err != nil {
		respondBadRequest(c, "Invalid limit parameter")
		return
	}

	entries, err := h.store.ListRecentErrors(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c, err, "Failed to list errors")
		return
	}

	out := make([]errorEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toErrorEntryDTO(e))
	}
	c.JSON(http.StatusOK, gin.H{"errors": out})
}

// ResolveError marks one audit-log entry as resolved
// POST /api/v1/errors/:id/resolve
func (h *Handler) ResolveError(c *gin.Context) {
	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid error ID")
		return
	}

	if err := h.store.MarkErrorResolved(c.Request.Context(), entryID); err != nil {
		respondInternalError(c, err, "Failed to resolve error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"resolved": true})
}

// recordResponseRequest is the body for RecordResponse
type recordResponseRequest struct {
	Text string `json:"text" binding:"required"`
}

// RecordResponse records an admin's reply to an outreach message
// POST /api/v1/messages/:id/response
func (h *Handler) RecordResponse(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid message ID")
		return
	}

	var req recordResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.store.RecordResponse(c.Request.Context(), messageID, req.Text); err != nil {
		respondInternalError(c, err, "Failed to record response")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true})
}

// markConvertedRequest is the body for MarkConverted
type markConvertedRequest struct {
	Notes string `json:"notes"`
}

// MarkConverted flags an outreach message's lead as converted
// POST /api/v1/messages/:id/conversion
func (h *Handler) MarkConverted(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid message ID")
		return
	}

	var req markConvertedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.store.MarkConverted(c.Request.Context(), messageID, req.Notes); err != nil {
		respondInternalError(c, err, "Failed to mark conversion")
		return
	}
	c.JSON(http.StatusOK, gin.H{"converted": true})
}

// parseBoundedInt parses a positive query integer, applying a default when
// absent and a ceiling in all cases
func parseBoundedInt(raw string, def, max int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, strconv.ErrSyntax
	}
	if n > max {
		return max, nil
	}
	return n, nil
}
