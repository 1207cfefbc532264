package theme

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vere-app/vere/adapters/event"
	"github.com/vere-app/vere/internal/application/service"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/internal/domain/theme"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

type ThemeUseCase struct {
	themeRepo   theme.Repository
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	cache       service.PageCache
	logger      logger.Logger
}

func NewThemeUseCase(tRepo theme.Repository, pRepo profile.Repository, kClient *event.KafkaProducerClient, cache service.PageCache, log logger.Logger) *ThemeUseCase {
	return &ThemeUseCase{
		themeRepo:   tRepo,
		profileRepo: pRepo,
		kafkaClient: kClient,
		cache:       cache,
		logger:      log,
	}
}

type ListThemesInput struct {
	ProfileType profile.Kind
	AuthorID    uuid.UUID
}

type ListThemesOutput struct {
	Builtin   []theme.Theme
	Community []theme.Theme
	Own       []theme.Theme
}

func (uc *ThemeUseCase) ExecuteListThemes(ctx context.Context, input ListThemesInput) (*ListThemesOutput, error) {
	out := &ListThemesOutput{
		Builtin: theme.BaseThemesByType(input.ProfileType),
	}

	published, err := uc.themeRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range published {
		if input.ProfileType == "" || t.ProfileType == input.ProfileType {
			out.Community = append(out.Community, t)
		}
	}

	if input.AuthorID != uuid.Nil {
		own, err := uc.themeRepo.ListByAuthor(ctx, input.AuthorID)
		if err != nil {
			return nil, err
		}
		for _, t := range own {
			if input.ProfileType == "" || t.ProfileType == input.ProfileType {
				out.Own = append(out.Own, t)
			}
		}
	}
	return out, nil
}

type ApplyThemeInput struct {
	ProfileID uuid.UUID
	ThemeID   string
	OwnerID   uuid.UUID
}

type ApplyThemeOutput struct {
	Record *profile.Record
}

// ExecuteApplyTheme overwrites the profile's token-backed fields with
// the theme's values. Fields the theme does not carry are untouched.
func (uc *ThemeUseCase) ExecuteApplyTheme(ctx context.Context, input ApplyThemeInput) (*ApplyThemeOutput, error) {
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

	t, err := theme.Resolve(ctx, uc.themeRepo, input.ThemeID)
	if err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			return nil, apperror.NewNotFound("theme", input.ThemeID)
		}
		return nil, err
	}
	if !t.Published && t.AuthorID != uuid.Nil && t.AuthorID != input.OwnerID {
		return nil, apperror.NewPermissionDenied("theme is not published")
	}

	theme.ApplyUpdates(&rec.Data, theme.BuildUpdates(t))
	if err := uc.profileRepo.UpdateData(ctx, rec.ID, rec.Data); err != nil {
		return nil, err
	}
	rec.UpdatedAt = time.Now().UTC()
	uc.cache.Del("page:" + rec.Username)

	go func() {
		err := uc.kafkaClient.PublishThemeEvent(context.Background(), event.ThemeEventPayload{
			EventType: event.ThemeEventTypeApplied,
			ThemeID:   t.ID,
			ProfileID: rec.ID,
			AuthorID:  input.OwnerID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'applied' event", err, zap.String("theme_id", t.ID))
		}
	}()

	return &ApplyThemeOutput{Record: rec}, nil
}

type CreateThemeInput struct {
	ProfileID uuid.UUID
	OwnerID   uuid.UUID
	Name      string
}

type CreateThemeOutput struct {
	Theme *theme.Theme
}

// ExecuteCreateTheme snapshots the profile's current token values into
// a new user-saved theme.
func (uc *ThemeUseCase) ExecuteCreateTheme(ctx context.Context, input CreateThemeInput) (*CreateThemeOutput, error) {
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

	t, err := theme.FromProfile(input.Name, rec.Kind, &rec.Data)
	if err != nil {
		return nil, apperror.NewInvalidInput("theme validation failed", err)
	}
	t.AuthorID = input.OwnerID

	if err := uc.themeRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	go func() {
		err := uc.kafkaClient.PublishThemeEvent(context.Background(), event.ThemeEventPayload{
			EventType: event.ThemeEventTypeCreated,
			ThemeID:   t.ID,
			ProfileID: rec.ID,
			AuthorID:  input.OwnerID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'created' event", err, zap.String("theme_id", t.ID))
		}
	}()

	return &CreateThemeOutput{Theme: t}, nil
}

type PublishThemeInput struct {
	ThemeID   string
	AuthorID  uuid.UUID
	Published bool
}

func (uc *ThemeUseCase) ExecutePublishTheme(ctx context.Context, input PublishThemeInput) error {
	if theme.GetBuiltin(input.ThemeID) != nil {
		return apperror.NewInvalidInput("built-in themes cannot be republished", nil)
	}

	err := uc.themeRepo.SetPublished(ctx, input.ThemeID, input.AuthorID, input.Published)
	if err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			return apperror.NewNotFound("theme", input.ThemeID)
		}
		return err
	}

	if input.Published {
		go func() {
			err := uc.kafkaClient.PublishThemeEvent(context.Background(), event.ThemeEventPayload{
				EventType: event.ThemeEventTypePublished,
				ThemeID:   input.ThemeID,
				AuthorID:  input.AuthorID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish Kafka 'published' event", err, zap.String("theme_id", input.ThemeID))
			}
		}()
	}
	return nil
}
