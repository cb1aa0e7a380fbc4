// Package funnel drives leads through the outreach pipeline: join the
// lead's group, discover its admins, message the best target. The stage
// executor handles one lead; the cycle controller batches leads and paces
// them; the daemon repeats cycles inside the configured active hours.
package funnel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/logger"
	"github.com/lumina-labs/lead-funnel/internal/messenger"
	"github.com/lumina-labs/lead-funnel/internal/ratelimit"
	"github.com/lumina-labs/lead-funnel/internal/store"
	"github.com/lumina-labs/lead-funnel/internal/store/schema"
)

// Outcome classifies how far a lead progressed in one executor pass
type Outcome string

const (
	// OutcomeRateLimited means the hourly budget or a platform flood wait
	// stopped the pass; Wait carries the pause to respect
	OutcomeRateLimited Outcome = "rate_limited"
	// OutcomeSkipped means the lead can never be processed (no usable
	// handle, private group) and was retired
	OutcomeSkipped Outcome = "skipped"
	// OutcomeJoinFailed means the join failed transiently; the lead keeps
	// its remaining join attempts
	OutcomeJoinFailed Outcome = "join_failed"
	// OutcomeNoAdmins means the group was joined but exposed no
	// messageable admins
	OutcomeNoAdmins Outcome = "no_admins"
	// OutcomeMessaged means a direct message was delivered
	OutcomeMessaged Outcome = "messaged"
	// OutcomeMessageFailed means every admin rejected the message
	OutcomeMessageFailed Outcome = "message_failed"
	// OutcomeAllContacted means the lead's admins already have successful
	// messages and nothing was left to do
	OutcomeAllContacted Outcome = "all_contacted"
)

// StageResult is the outcome of one executor pass over a lead
type StageResult struct {
	Outcome Outcome
	// Wait is the pause the caller must respect before the next
	// rate-limited action; only set for OutcomeRateLimited
	Wait time.Duration
	// Joined reports whether this pass performed a group join on the
	// platform, whatever happened afterwards
	Joined bool
}

// ExecutorConfig holds stage-executor configuration
type ExecutorConfig struct {
	// MessageTemplate is the outreach text; {name} and {symbol} expand to
	// the lead's token name and ticker
	MessageTemplate string
	// TemplateName labels stored messages with the template used
	TemplateName string
}

// Processor runs the outreach stages for a single lead
//
//go:generate mockgen -source=executor.go -destination=../mocks/processor.go -package=mocks -mock_names=Processor=MockProcessor
type Processor interface {
	ProcessLead(ctx context.Context, lead *schema.Lead) (*StageResult, error)
}

type stageExecutor struct {
	config    ExecutorConfig
	store     store.Store
	messenger messenger.Messenger
	limiter   *ratelimit.Limiter
}

// NewStageExecutor creates a stage executor
func NewStageExecutor(config ExecutorConfig, st store.Store, m messenger.Messenger, limiter *ratelimit.Limiter) Processor {
	return &stageExecutor{
		config:    config,
		store:     st,
		messenger: m,
		limiter:   limiter,
	}
}

// ProcessLead advances one lead as far as budgets and the platform allow:
// join its group if not yet joined, record the group's admins, then message
// the best uncontacted admin. Every state change commits before the next
// platform call, so a crash mid-pass never loses progress.
func (e *stageExecutor) ProcessLead(ctx context.Context, lead *schema.Lead) (*StageResult, error) {
	if lead.TelegramURL == nil || *lead.TelegramURL == "" {
		return &StageResult{Outcome: OutcomeSkipped}, nil
	}

	handle, err := messenger.ExtractHandle(*lead.TelegramURL)
	if err != nil {
		// Unusable link: burn a join attempt so the lead retires after
		// the configured ceiling
		reason := err.Error()
		if _, recordErr := e.store.RecordGroupJoin(ctx, store.GroupJoin{
			LeadID:   lead.ID,
			GroupURL: *lead.TelegramURL,
			Success:  false,
			Error:    &reason,
		}); recordErr != nil {
			return nil, recordErr
		}
		logger.InfoCtx(ctx, "skipping lead with unusable group link",
			zap.Int64("lead_id", lead.ID),
			zap.String("url", *lead.TelegramURL),
			zap.Error(err))
		return &StageResult{Outcome: OutcomeSkipped}, nil
	}

	joined := false
	if lead.Status == domain.StatusDiscovered {
		result, err := e.joinStage(ctx, lead, handle)
		if err != nil || result != nil {
			return result, err
		}
		joined = true
	}

	result, err := e.messageStage(ctx, lead)
	if err != nil {
		return nil, err
	}
	result.Joined = result.Joined || joined
	return result, nil
}

// joinStage joins the lead's group and records its admins. A nil result
// with nil error means the pass continues into the message stage.
func (e *stageExecutor) joinStage(ctx context.Context, lead *schema.Lead, handle string) (*StageResult, error) {
	if ok, wait := e.limiter.CanProceed(domain.ActionJoin); !ok {
		return &StageResult{Outcome: OutcomeRateLimited, Wait: wait}, nil
	}

	joinResult, joinErr := e.messenger.JoinGroup(ctx, handle)
	if joinErr != nil {
		var floodErr *domain.FloodWaitError
		if errors.As(joinErr, &floodErr) {
			// Platform throttle: keep the failed attempt on record for
			// audit, without consuming one of the lead's join attempts
			reason := joinErr.Error()
			if _, err := e.store.RecordGroupJoin(ctx, store.GroupJoin{
				LeadID:      lead.ID,
				GroupURL:    *lead.TelegramURL,
				GroupHandle: handle,
				Success:     false,
				Error:       &reason,
				Throttled:   true,
			}); err != nil {
				return nil, err
			}
			logger.WarnCtx(ctx, "flood wait during join",
				zap.Int64("lead_id", lead.ID),
				zap.Duration("retry_after", floodErr.RetryAfter))
			return &StageResult{Outcome: OutcomeRateLimited, Wait: floodErr.RetryAfter}, nil
		}

		reason := joinErr.Error()
		if _, err := e.store.RecordGroupJoin(ctx, store.GroupJoin{
			LeadID:      lead.ID,
			GroupURL:    *lead.TelegramURL,
			GroupHandle: handle,
			Success:     false,
			Error:       &reason,
		}); err != nil {
			return nil, err
		}

		if domain.IsTerminalMessagingError(joinErr) {
			return &StageResult{Outcome: OutcomeSkipped}, nil
		}
		return &StageResult{Outcome: OutcomeJoinFailed}, nil
	}

	membershipID, err := e.store.RecordGroupJoin(ctx, store.GroupJoin{
		LeadID:      lead.ID,
		GroupURL:    *lead.TelegramURL,
		GroupHandle: handle,
		Success:     true,
		MemberCount: joinResult.MemberCount,
	})
	if err != nil {
		return nil, err
	}
	// Failed attempts consume no budget; only a join the platform accepted
	// counts against the window
	e.limiter.Record(domain.ActionJoin)
	lead.Status = domain.StatusJoined

	logger.InfoCtx(ctx, "joined group",
		zap.Int64("lead_id", lead.ID),
		zap.String("group", handle),
		zap.Bool("already_member", joinResult.AlreadyMember))

	admins, err := e.messenger.ListAdmins(ctx, handle)
	if err != nil {
		var floodErr *domain.FloodWaitError
		if errors.As(err, &floodErr) {
			return &StageResult{Outcome: OutcomeRateLimited, Wait: floodErr.RetryAfter, Joined: true}, nil
		}
		// The join is durable, but with no admins on record the lead parks
		// at joined and only a manual pass revisits it, same as a group
		// that exposes no admins at all
		logger.WarnCtx(ctx, "failed to list group admins",
			zap.Int64("lead_id", lead.ID),
			zap.String("group", handle),
			zap.Error(err))
		return &StageResult{Outcome: OutcomeNoAdmins, Joined: true}, nil
	}

	for _, admin := range admins {
		if _, _, err := e.store.AddAdmin(ctx, lead.ID, membershipID, admin); err != nil {
			return nil, err
		}
	}
	if len(admins) == 0 {
		return &StageResult{Outcome: OutcomeNoAdmins, Joined: true}, nil
	}
	return nil, nil
}

// messageStage sends the templated message to the lead's best uncontacted
// admin, falling through to the next admin on per-target failures
func (e *stageExecutor) messageStage(ctx context.Context, lead *schema.Lead) (*StageResult, error) {
	admins, err := e.store.ListUncontactedAdmins(ctx, lead.ID)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return &StageResult{Outcome: OutcomeAllContacted}, nil
	}

	body := e.renderMessage(lead)
	for _, admin := range admins {
		if ok, wait := e.limiter.CanProceed(domain.ActionMessage); !ok {
			return &StageResult{Outcome: OutcomeRateLimited, Wait: wait}, nil
		}

		sendErr := e.messenger.SendMessage(ctx, admin.Handle, body)

		if sendErr == nil {
			e.limiter.Record(domain.ActionMessage)
			if _, err := e.store.RecordMessage(ctx, store.MessageRecord{
				LeadID:   lead.ID,
				AdminID:  admin.ID,
				Body:     body,
				Template: e.config.TemplateName,
				Success:  true,
			}); err != nil {
				return nil, err
			}
			logger.InfoCtx(ctx, "sent outreach message",
				zap.Int64("lead_id", lead.ID),
				zap.String("admin", admin.Handle))
			return &StageResult{Outcome: OutcomeMessaged}, nil
		}

		reason := sendErr.Error()
		if _, err := e.store.RecordMessage(ctx, store.MessageRecord{
			LeadID:   lead.ID,
			AdminID:  admin.ID,
			Body:     body,
			Template: e.config.TemplateName,
			Success:  false,
			Error:    &reason,
		}); err != nil {
			return nil, err
		}

		var floodErr *domain.FloodWaitError
		if errors.As(sendErr, &floodErr) {
			return &StageResult{Outcome: OutcomeRateLimited, Wait: floodErr.RetryAfter}, nil
		}
		if !domain.IsTerminalMessagingError(sendErr) {
			// Transient failure: leave the remaining admins for the next
			// cycle instead of spraying retries
			logger.WarnCtx(ctx, "message send failed",
				zap.Int64("lead_id", lead.ID),
				zap.String("admin", admin.Handle),
				zap.Error(sendErr))
			return &StageResult{Outcome: OutcomeMessageFailed}, nil
		}
		// Per-target failure (privacy settings, dead handle): try the
		// next admin
	}
	return &StageResult{Outcome: OutcomeMessageFailed}, nil
}

// renderMessage expands the template placeholders with the lead's identity
func (e *stageExecutor) renderMessage(lead *schema.Lead) string {
	replacer := strings.NewReplacer(
		"{name}", lead.Name,
		"{symbol}", lead.Symbol,
	)
	return replacer.Replace(e.config.MessageTemplate)
}

// describeLead is a compact identity for error-log context fields
func describeLead(lead *schema.Lead) string {
	return fmt.Sprintf("lead=%d contract=%s", lead.ID, lead.ContractAddress)
}
