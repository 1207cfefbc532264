package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/vere-app/vere/internal/application/service"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

const (
	AssetKindAvatar = "avatar"
	AssetKindAudio  = "audio"
	AssetKindImage  = "image"
)

type UploadAssetUseCase struct {
	profileRepo profile.Repository
	uploader    service.Uploader
	cache       service.PageCache
	logger      logger.Logger
}

func NewUploadAssetUseCase(pRepo profile.Repository, uploader service.Uploader, cache service.PageCache, log logger.Logger) *UploadAssetUseCase {
	return &UploadAssetUseCase{
		profileRepo: pRepo,
		uploader:    uploader,
		cache:       cache,
		logger:      log,
	}
}

type UploadAssetInput struct {
	OwnerID   uuid.UUID
	ProfileID uuid.UUID
	Kind      string // avatar | audio | image
	File      io.Reader

	// Audio trim window, only meaningful for Kind == audio.
	AudioStartTime float64
	AudioEndTime   float64
}

type UploadAssetOutput struct {
	URL string
}

// Execute uploads the asset and, for avatar and audio, rebinds the
// profile field pointing at it. Plain images are upload-only; the
// caller places the returned URL into sections or canvas elements.
func (uc *UploadAssetUseCase) Execute(ctx context.Context, input UploadAssetInput) (*UploadAssetOutput, error) {
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

	switch input.Kind {
	case AssetKindAvatar, AssetKindAudio, AssetKindImage:
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown asset kind %q", input.Kind), nil)
	}

	folder := fmt.Sprintf("profiles/%s/%s", rec.ID.String(), input.Kind)
	publicID := uuid.NewString()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload asset", err)
	}

	switch input.Kind {
	case AssetKindAvatar:
		rec.Data.Avatar = url
	case AssetKindAudio:
		rec.Data.AudioURL = url
		rec.Data.AudioStartTime = input.AudioStartTime
		rec.Data.AudioEndTime = input.AudioEndTime
	case AssetKindImage:
		return &UploadAssetOutput{URL: url}, nil
	}

	if err := uc.profileRepo.UpdateData(ctx, rec.ID, rec.Data); err != nil {
		go uc.uploader.Delete(context.Background(), folder+"/"+publicID)
		return nil, err
	}
	rec.UpdatedAt = time.Now().UTC()
	uc.cache.Del("page:" + rec.Username)

	return &UploadAssetOutput{URL: url}, nil
}
