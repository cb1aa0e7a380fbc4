package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/store/schema"
)

// counterColumns maps the closed counter enumeration to daily_metrics columns.
// Increments for anything outside this map are rejected, so no caller can
// conjure a new metric by typo.
var counterColumns = map[domain.Counter]string{
	domain.CounterTokensFound:        "tokens_found",
	domain.CounterTokensWithTelegram: "tokens_with_telegram",
	domain.CounterUnindexedSites:     "unindexed_sites_found",
	domain.CounterGroupsJoined:       "groups_joined",
	domain.CounterJoinFailures:       "join_failures",
	domain.CounterAdminsFound:        "admins_found",
	domain.CounterMessagesSent:       "dms_sent",
	domain.CounterMessagesFailed:     "dms_failed",
	domain.CounterResponsesReceived:  "responses_received",
	domain.CounterConversions:        "conversions",
}

type pgStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewPGStore creates a PostgreSQL-backed Store. The clock decides which
// calendar date daily counters land on.
func NewPGStore(db *gorm.DB, clock adapter.Clock) Store {
	return &pgStore{db: db, clock: clock}
}

// ConnectionPoolSettings bounds the underlying sql.DB pool
type ConnectionPoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NormalizeConnectionPoolSettings fills unset pool settings with defaults
func NormalizeConnectionPoolSettings(s ConnectionPoolSettings) ConnectionPoolSettings {
	if s.MaxOpenConns <= 0 {
		s.MaxOpenConns = 20
	}
	if s.MaxIdleConns <= 0 {
		s.MaxIdleConns = 5
	}
	if s.ConnMaxLifetime <= 0 {
		s.ConnMaxLifetime = 30 * time.Minute
	}
	return s
}

// ConfigureConnectionPool applies pool settings to the gorm connection
func ConfigureConnectionPool(db *gorm.DB, settings ConnectionPoolSettings) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	settings = NormalizeConnectionPoolSettings(settings)
	sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)
	return nil
}

func (s *pgStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(
		&schema.Lead{},
		&schema.GroupMembership{},
		&schema.Admin{},
		&schema.OutreachMessage{},
		&schema.DailyMetric{},
		&schema.ErrorLogEntry{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// metricDate truncates the clock's current instant to the UTC calendar day
func (s *pgStore) metricDate() time.Time {
	return s.clock.Now().UTC().Truncate(24 * time.Hour)
}

// incrementCounter bumps one daily counter inside the caller's transaction,
// creating the day's row if needed
func (s *pgStore) incrementCounter(tx *gorm.DB, date time.Time, counter domain.Counter, amount int64) error {
	column, ok := counterColumns[counter]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCounter, counter)
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(&schema.DailyMetric{Date: date}).Error; err != nil {
		return fmt.Errorf("failed to ensure daily metric row: %w", err)
	}

	if err := tx.Model(&schema.DailyMetric{}).
		Where("date = ?", date).
		UpdateColumn(column, gorm.Expr(column+" + ?", amount)).Error; err != nil {
		return fmt.Errorf("failed to increment counter %s: %w", counter, err)
	}
	return nil
}

// advanceLeadStatus moves a lead forward in the funnel inside the caller's
// transaction. The guard on current status makes the update a no-op when the
// lead already sits at or past the target, so replays never regress state.
func (s *pgStore) advanceLeadStatus(tx *gorm.DB, leadID int64, from []domain.LeadStatus, to domain.LeadStatus) error {
	if err := tx.Model(&schema.Lead{}).
		Where("id = ? AND status IN ?", leadID, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": s.clock.Now(),
		}).Error; err != nil {
		return fmt.Errorf("failed to advance lead %d to %s: %w", leadID, to, err)
	}
	return nil
}

func (s *pgStore) AddLead(ctx context.Context, c domain.Candidate) (int64, bool, error) {
	now := s.clock.Now()
	lead := schema.Lead{
		ContractAddress: c.ContractAddress,
		Name:            c.Name,
		Symbol:          c.Symbol,
		Chain:           c.Chain,
		Website:         c.Website,
		TelegramURL:     c.TelegramURL,
		TwitterURL:      c.TwitterURL,
		PairURL:         c.PairURL,
		Volume24h:       c.Volume24h,
		Liquidity:       c.Liquidity,
		MarketCap:       c.MarketCap,
		AgeHours:        c.AgeHours(now),
		Status:          domain.StatusDiscovered,
		DiscoveredAt:    now,
		UpdatedAt:       now,
	}

	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "contract_address"}},
			DoNothing: true,
		}).Create(&lead)
		if result.Error != nil {
			return fmt.Errorf("failed to insert lead: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			// Known address: surface the existing row untouched
			var existing schema.Lead
			if err := tx.Where("contract_address = ?", c.ContractAddress).First(&existing).Error; err != nil {
				return fmt.Errorf("failed to load existing lead: %w", err)
			}
			lead.ID = existing.ID
			return nil
		}

		created = true
		date := s.metricDate()
		if err := s.incrementCounter(tx, date, domain.CounterTokensFound, 1); err != nil {
			return err
		}
		if c.TelegramURL != nil && *c.TelegramURL != "" {
			if err := s.incrementCounter(tx, date, domain.CounterTokensWithTelegram, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return lead.ID, created, nil
}

func (s *pgStore) GetLead(ctx context.Context, leadID int64) (*schema.Lead, error) {
	var lead schema.Lead
	if err := s.db.WithContext(ctx).First(&lead, leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &lead, nil
}

func (s *pgStore) GetLeadByContract(ctx context.Context, contractAddress string) (*schema.Lead, error) {
	var lead schema.Lead
	if err := s.db.WithContext(ctx).
		Where("contract_address = ?", contractAddress).
		First(&lead).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lead by contract: %w", err)
	}
	return &lead, nil
}

func (s *pgStore) SetLeadStatus(ctx context.Context, leadID int64, status domain.LeadStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid lead status %q", status)
	}
	result := s.db.WithContext(ctx).Model(&schema.Lead{}).
		Where("id = ?", leadID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": s.clock.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set lead status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (s *pgStore) RecordIndexStatus(ctx context.Context, leadID int64, status domain.IndexStatus) error {
	now := s.clock.Now()
	updates := map[string]interface{}{
		"index_checked_at": now,
		"updated_at":       now,
	}
	switch status {
	case domain.IndexStatusIndexed:
		updates["is_indexed"] = true
	case domain.IndexStatusNotIndexed:
		updates["is_indexed"] = false
	case domain.IndexStatusUnknown:
		// inconclusive probe, leave is_indexed NULL for a later retry
	default:
		return fmt.Errorf("invalid index status %q", status)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Lead{}).Where("id = ?", leadID).Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to record index status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrLeadNotFound
		}
		if status == domain.IndexStatusNotIndexed {
			return s.incrementCounter(tx, s.metricDate(), domain.CounterUnindexedSites, 1)
		}
		return nil
	})
}

func (s *pgStore) ListUncontactedLeads(ctx context.Context, limit int, onlyUnindexed bool, maxJoinAttempts int) ([]*schema.Lead, error) {
	query := s.db.WithContext(ctx).
		Where("status = ?", domain.StatusDiscovered).
		Where("telegram_url IS NOT NULL AND telegram_url <> ''").
		Where("join_attempts < ?", maxJoinAttempts)
	if onlyUnindexed {
		query = query.Where("is_indexed = ?", false)
	}

	var leads []*schema.Lead
	if err := query.Order("discovered_at DESC").Limit(limit).Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to list uncontacted leads: %w", err)
	}
	return leads, nil
}

func (s *pgStore) ListJoinedLeadsWithUncontactedAdmins(ctx context.Context, limit int) ([]*schema.Lead, error) {
	var leads []*schema.Lead
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.StatusJoined).
		Where(`EXISTS (
			SELECT 1 FROM admins a
			WHERE a.lead_id = leads.id
			AND NOT EXISTS (
				SELECT 1 FROM outreach_messages m
				WHERE m.admin_id = a.id AND m.send_success
			)
		)`).
		Order("discovered_at DESC").
		Limit(limit).
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list joined leads with uncontacted admins: %w", err)
	}
	return leads, nil
}

func (s *pgStore) ListLeadsNeedingIndexCheck(ctx context.Context, limit int) ([]*schema.Lead, error) {
	var leads []*schema.Lead
	err := s.db.WithContext(ctx).
		Where("website IS NOT NULL AND website <> ''").
		Where("index_checked_at IS NULL").
		Order("discovered_at DESC").
		Limit(limit).
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leads needing index check: %w", err)
	}
	return leads, nil
}

func (s *pgStore) ListLeads(ctx context.Context, status *domain.LeadStatus, limit int) ([]*schema.Lead, error) {
	query := s.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var leads []*schema.Lead
	if err := query.Order("discovered_at DESC").Limit(limit).Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

func (s *pgStore) RecordGroupJoin(ctx context.Context, join GroupJoin) (int64, error) {
	membership := schema.GroupMembership{
		LeadID:      join.LeadID,
		GroupURL:    join.GroupURL,
		GroupHandle: join.GroupHandle,
		JoinedAt:    s.clock.Now(),
		JoinSuccess: join.Success,
		JoinError:   join.Error,
		MemberCount: join.MemberCount,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A retry against the same group updates the earlier attempt's row
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "lead_id"}, {Name: "group_url"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"group_handle", "joined_at", "join_success", "join_error", "member_count",
			}),
		}).Create(&membership).Error; err != nil {
			return fmt.Errorf("failed to upsert group membership: %w", err)
		}
		if membership.ID == 0 {
			var existing schema.GroupMembership
			if err := tx.Where("lead_id = ? AND group_url = ?", join.LeadID, join.GroupURL).
				First(&existing).Error; err != nil {
				return fmt.Errorf("failed to load group membership: %w", err)
			}
			membership.ID = existing.ID
		}

		date := s.metricDate()
		if join.Success {
			if err := s.advanceLeadStatus(tx, join.LeadID,
				[]domain.LeadStatus{domain.StatusDiscovered}, domain.StatusJoined); err != nil {
				return err
			}
			return s.incrementCounter(tx, date, domain.CounterGroupsJoined, 1)
		}

		if !join.Throttled {
			if err := tx.Model(&schema.Lead{}).
				Where("id = ?", join.LeadID).
				UpdateColumns(map[string]interface{}{
					"join_attempts": gorm.Expr("join_attempts + 1"),
					"updated_at":    s.clock.Now(),
				}).Error; err != nil {
				return fmt.Errorf("failed to bump join attempts: %w", err)
			}
		}
		return s.incrementCounter(tx, date, domain.CounterJoinFailures, 1)
	})
	if err != nil {
		return 0, err
	}
	return membership.ID, nil
}

func (s *pgStore) AddAdmin(ctx context.Context, leadID, membershipID int64, admin domain.AdminInfo) (int64, bool, error) {
	row := schema.Admin{
		LeadID:       leadID,
		MembershipID: membershipID,
		Handle:       admin.Handle,
		UserID:       admin.UserID,
		DisplayName:  admin.DisplayName,
		IsOwner:      admin.IsOwner,
		DiscoveredAt: s.clock.Now(),
	}

	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lead_id"}, {Name: "handle"}},
			DoNothing: true,
		}).Create(&row)
		if result.Error != nil {
			return fmt.Errorf("failed to insert admin: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			var existing schema.Admin
			if err := tx.Where("lead_id = ? AND handle = ?", leadID, admin.Handle).
				First(&existing).Error; err != nil {
				return fmt.Errorf("failed to load existing admin: %w", err)
			}
			row.ID = existing.ID
			return nil
		}

		created = true
		return s.incrementCounter(tx, s.metricDate(), domain.CounterAdminsFound, 1)
	})
	if err != nil {
		return 0, false, err
	}
	return row.ID, created, nil
}

func (s *pgStore) ListUncontactedAdmins(ctx context.Context, leadID int64) ([]*schema.Admin, error) {
	var admins []*schema.Admin
	err := s.db.WithContext(ctx).
		Table("admins").
		Select("admins.*").
		Joins("LEFT JOIN outreach_messages ON outreach_messages.admin_id = admins.id AND outreach_messages.send_success").
		Where("admins.lead_id = ? AND outreach_messages.id IS NULL", leadID).
		Order("admins.is_owner DESC, admins.id ASC").
		Find(&admins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list uncontacted admins: %w", err)
	}
	return admins, nil
}

func (s *pgStore) RecordMessage(ctx context.Context, msg MessageRecord) (int64, error) {
	row := schema.OutreachMessage{
		LeadID:      msg.LeadID,
		AdminID:     msg.AdminID,
		Body:        msg.Body,
		Template:    msg.Template,
		SentAt:      s.clock.Now(),
		SendSuccess: msg.Success,
		SendError:   msg.Error,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert outreach message: %w", err)
		}

		date := s.metricDate()
		if msg.Success {
			if err := s.advanceLeadStatus(tx, msg.LeadID,
				[]domain.LeadStatus{domain.StatusDiscovered, domain.StatusJoined},
				domain.StatusContacted); err != nil {
				return err
			}
			return s.incrementCounter(tx, date, domain.CounterMessagesSent, 1)
		}
		return s.incrementCounter(tx, date, domain.CounterMessagesFailed, 1)
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (s *pgStore) WasContacted(ctx context.Context, contractAddress string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.OutreachMessage{}).
		Joins("JOIN leads ON leads.id = outreach_messages.lead_id").
		Where("leads.contract_address = ? AND outreach_messages.send_success", contractAddress).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check contact history: %w", err)
	}
	return count > 0, nil
}

func (s *pgStore) RecordResponse(ctx context.Context, messageID int64, text string) error {
	now := s.clock.Now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var msg schema.OutreachMessage
		if err := tx.First(&msg, messageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("message %d not found", messageID)
			}
			return fmt.Errorf("failed to load message: %w", err)
		}

		firstResponse := !msg.ResponseReceived
		if err := tx.Model(&schema.OutreachMessage{}).
			Where("id = ?", messageID).
			Updates(map[string]interface{}{
				"response_received": true,
				"response_text":     text,
				"response_at":       now,
			}).Error; err != nil {
			return fmt.Errorf("failed to record response: %w", err)
		}

		if err := s.advanceLeadStatus(tx, msg.LeadID,
			[]domain.LeadStatus{domain.StatusDiscovered, domain.StatusJoined, domain.StatusContacted},
			domain.StatusResponded); err != nil {
			return err
		}
		if firstResponse {
			return s.incrementCounter(tx, s.metricDate(), domain.CounterResponsesReceived, 1)
		}
		return nil
	})
}

func (s *pgStore) MarkConverted(ctx context.Context, messageID int64, notes string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var msg schema.OutreachMessage
		if err := tx.First(&msg, messageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("message %d not found", messageID)
			}
			return fmt.Errorf("failed to load message: %w", err)
		}

		firstConversion := !msg.Converted
		if err := tx.Model(&schema.OutreachMessage{}).
			Where("id = ?", messageID).
			Updates(map[string]interface{}{
				"converted":        true,
				"conversion_notes": notes,
			}).Error; err != nil {
			return fmt.Errorf("failed to mark conversion: %w", err)
		}

		if err := s.advanceLeadStatus(tx, msg.LeadID,
			[]domain.LeadStatus{domain.StatusDiscovered, domain.StatusJoined, domain.StatusContacted, domain.StatusResponded},
			domain.StatusConverted); err != nil {
			return err
		}
		if firstConversion {
			return s.incrementCounter(tx, s.metricDate(), domain.CounterConversions, 1)
		}
		return nil
	})
}

func (s *pgStore) GetDailyMetrics(ctx context.Context, date time.Time) (*schema.DailyMetric, error) {
	var metric schema.DailyMetric
	err := s.db.WithContext(ctx).
		Where("date = ?", date.UTC().Truncate(24*time.Hour)).
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily metrics: %w", err)
	}
	return &metric, nil
}

func (s *pgStore) GetMetricsRange(ctx context.Context, days int) ([]*schema.DailyMetric, error) {
	since := s.metricDate().AddDate(0, 0, -(days - 1))
	var metrics []*schema.DailyMetric
	err := s.db.WithContext(ctx).
		Where("date >= ?", since).
		Order("date DESC").
		Find(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics range: %w", err)
	}
	return metrics, nil
}

func (s *pgStore) GetSummaryStats(ctx context.Context) (*domain.SummaryStats, error) {
	stats := &domain.SummaryStats{}
	db := s.db.WithContext(ctx)

	type leadCount struct {
		Total    int64
		Telegram int64
		Unindex  int64
		Joined   int64
	}
	var lc leadCount
	err := db.Model(&schema.Lead{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE telegram_url IS NOT NULL AND telegram_url <> '') AS telegram,
			COUNT(*) FILTER (WHERE is_indexed = false) AS unindex,
			COUNT(*) FILTER (WHERE status IN ?) AS joined`,
			[]domain.LeadStatus{domain.StatusJoined, domain.StatusContacted, domain.StatusResponded, domain.StatusConverted}).
		Scan(&lc).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leads: %w", err)
	}
	stats.TotalLeads = lc.Total
	stats.LeadsWithTelegram = lc.Telegram
	stats.UnindexedSites = lc.Unindex
	stats.GroupsJoined = lc.Joined

	if err := db.Model(&schema.Lead{}).
		Where("status IN ?", []domain.LeadStatus{domain.StatusContacted, domain.StatusResponded, domain.StatusConverted}).
		Count(&stats.LeadsContacted).Error; err != nil {
		return nil, fmt.Errorf("failed to count contacted leads: %w", err)
	}

	type messageCount struct {
		Sent      int64
		Responded int64
		Converted int64
	}
	var mc messageCount
	err = db.Model(&schema.OutreachMessage{}).
		Select(`COUNT(*) FILTER (WHERE send_success) AS sent,
			COUNT(*) FILTER (WHERE response_received) AS responded,
			COUNT(*) FILTER (WHERE converted) AS converted`).
		Scan(&mc).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate messages: %w", err)
	}
	stats.MessagesSent = mc.Sent
	stats.ResponsesReceived = mc.Responded
	stats.Conversions = mc.Converted

	if stats.MessagesSent > 0 {
		stats.ResponseRate = float64(stats.ResponsesReceived) / float64(stats.MessagesSent) * 100
	}
	if stats.ResponsesReceived > 0 {
		stats.ConversionRate = float64(stats.Conversions) / float64(stats.ResponsesReceived) * 100
	}
	return stats, nil
}

func (s *pgStore) LogError(ctx context.Context, errorType, message, errContext string) error {
	entry := schema.ErrorLogEntry{
		Timestamp: s.clock.Now(),
		ErrorType: errorType,
		Message:   message,
		Context:   errContext,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to log error: %w", err)
	}
	return nil
}

func (s *pgStore) ListRecentErrors(ctx context.Context, limit int) ([]*schema.ErrorLogEntry, error) {
	var entries []*schema.ErrorLogEntry
	err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent errors: %w", err)
	}
	return entries, nil
}

func (s *pgStore) MarkErrorResolved(ctx context.Context, entryID int64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.ErrorLogEntry{}).
		Where("id = ?", entryID).
		Update("resolved", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark error resolved: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("error log entry %d not found", entryID)
	}
	return nil
}

func (s *pgStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
