package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vere-app/vere/adapters/event"
	"github.com/vere-app/vere/internal/domain/analytics"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

type AnalyticsUseCase struct {
	analyticsRepo analytics.Repository
	profileRepo   profile.Repository
	kafkaClient   *event.KafkaProducerClient
	logger        logger.Logger
}

func NewAnalyticsUseCase(aRepo analytics.Repository, pRepo profile.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		analyticsRepo: aRepo,
		profileRepo:   pRepo,
		kafkaClient:   kClient,
		logger:        log,
	}
}

type RecordViewInput struct {
	ProfileID      uuid.UUID
	ViewerUsername string
}

// ExecuteRecordView appends to the view log and fans the event out to
// Kafka. Log failures are surfaced; the fan-out is best effort.
func (uc *AnalyticsUseCase) ExecuteRecordView(ctx context.Context, input RecordViewInput) error {
	ev := analytics.ViewEvent{
		ProfileID:      input.ProfileID.String(),
		ViewerUsername: input.ViewerUsername,
		Timestamp:      time.Now().UTC(),
	}
	if err := uc.analyticsRepo.Append(ctx, ev); err != nil {
		return err
	}

	go func() {
		err := uc.kafkaClient.PublishViewEvent(context.Background(), event.ViewEventPayload{
			ProfileID:      input.ProfileID,
			ViewerUsername: input.ViewerUsername,
			Timestamp:      ev.Timestamp,
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka view event", err, zap.String("profile_id", input.ProfileID.String()))
		}
	}()
	return nil
}

type GetSummaryInput struct {
	ProfileID uuid.UUID
	OwnerID   uuid.UUID
}

type GetSummaryOutput struct {
	Summary analytics.Summary
	Saves   int
	Vheart  int
}

// ExecuteGetSummary is owner-only: raw counters are never exposed to
// visitors, only folded into the professional renderers.
func (uc *AnalyticsUseCase) ExecuteGetSummary(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	rec, err := uc.profileRepo.GetByID(ctx, input.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.ProfileID.String())
		}
		return nil, err
	}
	if rec.OwnerID != input.OwnerID {
		return nil, apperror.NewPermissionDenied("profile belongs to another owner")
	}

	events, err := uc.analyticsRepo.ListByProfile(ctx, input.ProfileID.String())
	if err != nil {
		return nil, err
	}
	summary := analytics.Summarize(events, time.Now())

	saves, err := uc.analyticsRepo.CountSaves(ctx, input.ProfileID.String())
	if err != nil {
		uc.logger.Warn("Failed to count saves", zap.String("profile_id", input.ProfileID.String()), zap.Error(err))
		saves = 0
	}

	return &GetSummaryOutput{
		Summary: summary,
		Saves:   saves,
		Vheart:  analytics.Vheart(summary.UniqueViewers, saves),
	}, nil
}

type SaveProfileInput struct {
	ProfileID uuid.UUID
}

// ExecuteSaveProfile bumps the save counter behind the vheart score.
func (uc *AnalyticsUseCase) ExecuteSaveProfile(ctx context.Context, input SaveProfileInput) error {
	if _, err := uc.profileRepo.GetByID(ctx, input.ProfileID); err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return apperror.NewNotFound("profile", input.ProfileID.String())
		}
		return err
	}
	return uc.analyticsRepo.AddSave(ctx, input.ProfileID.String())
}
