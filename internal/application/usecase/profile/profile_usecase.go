package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vere-app/vere/internal/application/service"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	cache       service.PageCache
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, cache service.PageCache, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		cache:       cache,
		logger:      log,
	}
}

type GetProfileInput struct {
	ProfileID uuid.UUID
	OwnerID   uuid.UUID
}

type GetProfileOutput struct {
	Record *profile.Record
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
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
	return &GetProfileOutput{Record: rec}, nil
}

type ListProfilesInput struct {
	OwnerID uuid.UUID
}

type ListProfilesOutput struct {
	Records []profile.Record
}

func (uc *ProfileUseCase) ExecuteListProfiles(ctx context.Context, input ListProfilesInput) (*ListProfilesOutput, error) {
	recs, err := uc.profileRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &ListProfilesOutput{Records: recs}, nil
}

type CreateProfileInput struct {
	OwnerID  uuid.UUID
	Username string
	Kind     profile.Kind
	Data     profile.Data
}

type CreateProfileOutput struct {
	Record *profile.Record
}

func (uc *ProfileUseCase) ExecuteCreateProfile(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	if input.Username == "" {
		return nil, apperror.NewInvalidInput("username is required", nil)
	}
	kind := input.Kind
	if kind == "" {
		kind = profile.KindPersonal
	}

	now := time.Now().UTC()
	rec := &profile.Record{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		Username:  input.Username,
		Kind:      kind,
		Data:      input.Data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.profileRepo.Create(ctx, rec); err != nil {
		if errors.Is(err, profile.ErrUsernameTaken) {
			return nil, apperror.NewConflict("profile", "username", input.Username)
		}
		return nil, err
	}
	return &CreateProfileOutput{Record: rec}, nil
}

type UpdateProfileInput struct {
	ProfileID uuid.UUID
	OwnerID   uuid.UUID
	Data      profile.Data
}

type UpdateProfileOutput struct {
	Record *profile.Record
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
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

	if err := uc.profileRepo.UpdateData(ctx, rec.ID, input.Data); err != nil {
		return nil, err
	}

	rec.Data = input.Data
	rec.UpdatedAt = time.Now().UTC()
	uc.cache.Del("page:" + rec.Username)
	return &UpdateProfileOutput{Record: rec}, nil
}
