package page

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	analyticsUC "github.com/vere-app/vere/internal/application/usecase/analytics"
	"github.com/vere-app/vere/internal/application/service"
	"github.com/vere-app/vere/internal/domain/analytics"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/internal/domain/theme"
	"github.com/vere-app/vere/internal/render"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
	"github.com/vere-app/vere/pkg/metrics"
)

var tracer = otel.Tracer("page_usecase")

type ViewPageUseCase struct {
	profileRepo   profile.Repository
	themeRepo     theme.Repository
	analyticsRepo analytics.Repository
	analyticsUC   *analyticsUC.AnalyticsUseCase
	cache         service.PageCache
	logger        logger.Logger
}

func NewViewPageUseCase(
	pRepo profile.Repository,
	tRepo theme.Repository,
	aRepo analytics.Repository,
	aUC *analyticsUC.AnalyticsUseCase,
	cache service.PageCache,
	log logger.Logger,
) *ViewPageUseCase {
	return &ViewPageUseCase{
		profileRepo:   pRepo,
		themeRepo:     tRepo,
		analyticsRepo: aRepo,
		analyticsUC:   aUC,
		cache:         cache,
		logger:        log,
	}
}

type ViewPageInput struct {
	Username       string
	ViewerID       uuid.UUID // uuid.Nil for anonymous viewers
	ViewerUsername string
	PreviewThemeID string // optional, skips the cache
}

type ViewPageOutput struct {
	Profile profile.Profile
	Result  render.Result
}

func (uc *ViewPageUseCase) Execute(ctx context.Context, input ViewPageInput) (*ViewPageOutput, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()
	span.SetAttributes(attribute.String("username", input.Username))

	rec, err := uc.profileRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.Username)
		}
		span.RecordError(err)
		return nil, err
	}

	p := profile.FromRecord(*rec)
	viewerIsOwner := input.ViewerID != uuid.Nil && input.ViewerID == rec.OwnerID

	var previewTheme *theme.Theme
	if input.PreviewThemeID != "" {
		previewTheme, err = theme.Resolve(ctx, uc.themeRepo, input.PreviewThemeID)
		if err != nil {
			if errors.Is(err, theme.ErrThemeNotFound) {
				return nil, apperror.NewNotFound("theme", input.PreviewThemeID)
			}
			return nil, err
		}
		if !previewTheme.Published && previewTheme.AuthorID != uuid.Nil && previewTheme.AuthorID != input.ViewerID {
			return nil, apperror.NewPermissionDenied("theme is not published")
		}
	}

	// Professional view modes fold view counters into the page; the
	// other kinds never touch the log.
	var summary analytics.Summary
	if p.Kind == profile.KindProfessional && p.IsPublic() {
		events, err := uc.analyticsRepo.ListByProfile(ctx, p.ID.String())
		if err != nil {
			uc.logger.Warn("Failed to load view log, rendering zero stats",
				zap.String("profile_id", p.ID.String()), zap.Error(err))
		}
		summary = analytics.Summarize(events, time.Now())
	}

	result := render.Page(p, previewTheme, summary, viewerIsOwner)
	metrics.CountPageRender(string(result.State))

	if result.State == render.StateOK && !viewerIsOwner {
		uc.recordView(p.ID, input.ViewerUsername)
	}

	return &ViewPageOutput{Profile: p, Result: result}, nil
}

// cachedPage is the freecache entry: the analytics side needs the
// profile id even on a hit.
type cachedPage struct {
	ProfileID uuid.UUID `json:"profile_id"`
	HTML      string    `json:"html"`
}

type ViewPageHTMLOutput struct {
	HTML  string
	State render.State
}

// ExecuteHTML renders the full page document. Anonymous, non-preview
// requests are served from the page cache.
func (uc *ViewPageUseCase) ExecuteHTML(ctx context.Context, input ViewPageInput) (*ViewPageHTMLOutput, error) {
	cacheable := input.ViewerID == uuid.Nil && input.PreviewThemeID == ""
	cacheKey := "page:" + input.Username

	if cacheable {
		if raw, ok := uc.cache.Get(cacheKey); ok {
			var entry cachedPage
			if err := json.Unmarshal(raw, &entry); err == nil {
				metrics.CountPageRender("cache_hit")
				uc.recordView(entry.ProfileID, input.ViewerUsername)
				return &ViewPageHTMLOutput{HTML: entry.HTML, State: render.StateOK}, nil
			}
			uc.cache.Del(cacheKey)
		}
	}

	out, err := uc.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	title := out.Profile.Data.DisplayName
	if title == "" {
		title = "@" + out.Profile.Username
	}
	html := render.Document(title, out.Result.Tree)

	if cacheable && out.Result.State == render.StateOK {
		raw, err := json.Marshal(cachedPage{ProfileID: out.Profile.ID, HTML: html})
		if err == nil {
			uc.cache.Set(cacheKey, raw)
		}
	}

	return &ViewPageHTMLOutput{HTML: html, State: out.Result.State}, nil
}

func (uc *ViewPageUseCase) recordView(profileID uuid.UUID, viewerUsername string) {
	go func() {
		err := uc.analyticsUC.ExecuteRecordView(context.Background(), analyticsUC.RecordViewInput{
			ProfileID:      profileID,
			ViewerUsername: viewerUsername,
		})
		if err != nil {
			uc.logger.Warn("Failed to record view", zap.String("profile_id", profileID.String()), zap.Error(err))
		}
	}()
}
