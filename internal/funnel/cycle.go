package funnel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/logger"
	"github.com/lumina-labs/lead-funnel/internal/providers/dexscreener"
	"github.com/lumina-labs/lead-funnel/internal/providers/indexcheck"
	"github.com/lumina-labs/lead-funnel/internal/store"
	"github.com/lumina-labs/lead-funnel/internal/store/schema"
)

// CycleConfig holds cycle-controller configuration
type CycleConfig struct {
	// Filters are the economic thresholds applied at discovery
	Filters domain.DiscoveryFilters
	// BatchLimit caps the leads processed per cycle
	BatchLimit int
	// MaxJoinAttempts retires a lead after this many failed joins
	MaxJoinAttempts int
	// RequireUnindexed restricts outreach to leads whose website is
	// absent from the search index
	RequireUnindexed bool
	// IndexCheckLimit caps search-index probes per cycle
	IndexCheckLimit int
	// CooldownAfterJoin paces the loop after a join that sent no message
	CooldownAfterJoin time.Duration
	// CooldownAfterMessage paces the loop after a delivered message
	CooldownAfterMessage time.Duration
	// ShortPause paces the loop between leads with no platform action
	ShortPause time.Duration
}

// CycleStats summarizes one completed cycle
type CycleStats struct {
	CycleID     string
	Discovered  int
	NewLeads    int
	Processed   int
	Messaged    int
	Joined      int
	Skipped     int
	Failed      int
	RateLimited bool
}

// CycleRunner runs one full discovery-and-outreach cycle
//
//go:generate mockgen -source=cycle.go -destination=../mocks/cycle_runner.go -package=mocks -mock_names=CycleRunner=MockCycleRunner
type CycleRunner interface {
	RunCycle(ctx context.Context) (*CycleStats, error)
}

type cycleController struct {
	config       CycleConfig
	store        store.Store
	discovery    dexscreener.Client
	indexChecker indexcheck.Client
	processor    Processor
	clock        adapter.Clock
}

// NewCycleController creates a cycle controller
func NewCycleController(
	config CycleConfig,
	st store.Store,
	discovery dexscreener.Client,
	indexChecker indexcheck.Client,
	processor Processor,
	clock adapter.Clock,
) CycleRunner {
	return &cycleController{
		config:       config,
		store:        st,
		discovery:    discovery,
		indexChecker: indexChecker,
		processor:    processor,
		clock:        clock,
	}
}

// RunCycle performs one cycle: pull fresh candidates into the store, probe
// pending websites against the search index, then walk the outreach batch.
// A rate limit stops the batch early; everything done so far stays durable.
func (c *cycleController) RunCycle(ctx context.Context) (*CycleStats, error) {
	stats := &CycleStats{
		// ULIDs keep cycle IDs unique and time-sortable in the logs
		CycleID: ulid.MustNewDefault(c.clock.Now()).String(),
	}
	startTime := c.clock.Now()
	logger.InfoCtx(ctx, "starting cycle", zap.String("cycle_id", stats.CycleID))

	// Discovery failing wholesale is a cycle error, but outreach still
	// proceeds on the existing backlog before the error surfaces
	discoveryErr := c.discoverLeads(ctx, stats)
	if discoveryErr != nil {
		stats.Failed++
		c.logCycleError(ctx, "discovery", discoveryErr, "")
	}

	c.checkPendingIndexes(ctx, stats)

	if err := c.processBatch(ctx, stats); err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logCycleError(ctx, "cycle", err, "")
		}
		return stats, err
	}

	logger.InfoCtx(ctx, "cycle completed",
		zap.String("cycle_id", stats.CycleID),
		zap.Duration("duration", c.clock.Since(startTime)),
		zap.Int("discovered", stats.Discovered),
		zap.Int("new_leads", stats.NewLeads),
		zap.Int("processed", stats.Processed),
		zap.Int("messaged", stats.Messaged),
		zap.Bool("rate_limited", stats.RateLimited),
	)
	// A discovery failure surfaces here so the daemon's error counter sees
	// it, after the backlog already had its turn
	return stats, discoveryErr
}

// discoverLeads pulls the current discovery feed into the store
func (c *cycleController) discoverLeads(ctx context.Context, stats *CycleStats) error {
	candidates, err := c.discovery.DiscoverCandidates(ctx, c.config.Filters)
	if err != nil {
		return fmt.Errorf("failed to discover candidates: %w", err)
	}
	stats.Discovered = len(candidates)

	for _, candidate := range candidates {
		_, created, err := c.store.AddLead(ctx, candidate)
		if err != nil {
			return fmt.Errorf("failed to store candidate %s: %w", candidate.ContractAddress, err)
		}
		if created {
			stats.NewLeads++
		}
	}
	logger.InfoCtx(ctx, "discovery finished",
		zap.Int("candidates", stats.Discovered),
		zap.Int("new_leads", stats.NewLeads))
	return nil
}

// checkPendingIndexes probes websites that have never been checked
func (c *cycleController) checkPendingIndexes(ctx context.Context, stats *CycleStats) {
	if c.config.IndexCheckLimit <= 0 {
		return
	}

	leads, err := c.store.ListLeadsNeedingIndexCheck(ctx, c.config.IndexCheckLimit)
	if err != nil {
		c.logCycleError(ctx, "index_check", err, "")
		return
	}

	for _, lead := range leads {
		status, err := c.indexChecker.CheckIndexed(ctx, *lead.Website)
		if err != nil {
			if errors.Is(err, indexcheck.ErrNoAPIKey) {
				// Probing is unconfigured; leave the queue untouched
				return
			}
			if errors.Is(err, indexcheck.ErrUnprobeableURL) {
				// The URL will never probe; record the open verdict so the
				// lead leaves the probe queue instead of retrying forever
				if err := c.store.RecordIndexStatus(ctx, lead.ID, domain.IndexStatusUnknown); err != nil {
					c.logCycleError(ctx, "index_check", err, describeLead(lead))
				}
				continue
			}
			// Transient probe failure: skip without recording so the lead
			// is retried next cycle
			logger.WarnCtx(ctx, "index probe failed",
				zap.Int64("lead_id", lead.ID),
				zap.Error(err))
			continue
		}
		if err := c.store.RecordIndexStatus(ctx, lead.ID, status); err != nil {
			c.logCycleError(ctx, "index_check", err, describeLead(lead))
		}
	}
}

// processBatch walks the cycle's outreach batch through the processor.
// Joined leads with pending admins resume first so partial progress from
// earlier cycles is not starved by fresh discoveries.
func (c *cycleController) processBatch(ctx context.Context, stats *CycleStats) error {
	batch, err := c.collectBatch(ctx)
	if err != nil {
		return err
	}

	for _, lead := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := c.processor.ProcessLead(ctx, lead)
		if err != nil {
			stats.Failed++
			c.logCycleError(ctx, "process", err, describeLead(lead))
			if !c.sleep(ctx, c.config.ShortPause) {
				return ctx.Err()
			}
			continue
		}
		stats.Processed++

		var pause time.Duration
		switch result.Outcome {
		case OutcomeRateLimited:
			// The budget is exhausted for every remaining lead too
			stats.RateLimited = true
			logger.InfoCtx(ctx, "cycle stopped by rate limit",
				zap.Duration("wait", result.Wait),
				zap.Int("processed", stats.Processed))
			return nil
		case OutcomeMessaged:
			stats.Messaged++
			pause = c.config.CooldownAfterMessage
		case OutcomeNoAdmins:
			stats.Joined++
			pause = c.config.CooldownAfterJoin
		case OutcomeSkipped:
			stats.Skipped++
			pause = c.config.ShortPause
		case OutcomeJoinFailed, OutcomeMessageFailed:
			stats.Failed++
			pause = c.config.ShortPause
			// A join did happen on the platform even though the message
			// went nowhere, so pace like any other join
			if result.Joined {
				pause = c.config.CooldownAfterJoin
			}
		default:
			pause = c.config.ShortPause
		}

		if !c.sleep(ctx, pause) {
			return ctx.Err()
		}
	}
	return nil
}

// collectBatch assembles the cycle's lead batch, resumable leads first
func (c *cycleController) collectBatch(ctx context.Context) ([]*schema.Lead, error) {
	batch, err := c.store.ListJoinedLeadsWithUncontactedAdmins(ctx, c.config.BatchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumable leads: %w", err)
	}

	remaining := c.config.BatchLimit - len(batch)
	if remaining <= 0 {
		return batch, nil
	}

	fresh, err := c.store.ListUncontactedLeads(ctx, remaining, c.config.RequireUnindexed, c.config.MaxJoinAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncontacted leads: %w", err)
	}
	return append(batch, fresh...), nil
}

// logCycleError records a failure in both the log stream and the audit table
func (c *cycleController) logCycleError(ctx context.Context, errorType string, err error, errContext string) {
	logger.ErrorCtx(ctx, err, zap.String("error_type", errorType), zap.String("context", errContext))
	if logErr := c.store.LogError(ctx, errorType, err.Error(), errContext); logErr != nil {
		logger.ErrorCtx(ctx, logErr)
	}
}

// sleep pauses for the given duration unless the context ends first.
// Returns false when interrupted.
func (c *cycleController) sleep(ctx context.Context, duration time.Duration) bool {
	if duration <= 0 {
		return true
	}
	select {
	case <-c.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	}
}
