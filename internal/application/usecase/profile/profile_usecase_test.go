package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

type fakeProfileRepo struct {
	byID      map[uuid.UUID]*profile.Record
	createErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: make(map[uuid.UUID]*profile.Record)}
}

func (r *fakeProfileRepo) GetByUsername(_ context.Context, username string) (*profile.Record, error) {
	for _, rec := range r.byID {
		if rec.Username == username {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*profile.Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeProfileRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]profile.Record, error) {
	var out []profile.Record
	for _, rec := range r.byID {
		if rec.OwnerID == ownerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, rec *profile.Record) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.Username == rec.Username {
			return profile.ErrUsernameTaken
		}
	}
	cp := *rec
	r.byID[rec.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) UpdateData(_ context.Context, id uuid.UUID, data profile.Data) error {
	rec, ok := r.byID[id]
	if !ok {
		return profile.ErrProfileNotFound
	}
	rec.Data = data
	return nil
}

type spyCache struct {
	deleted []string
}

func (c *spyCache) Get(string) ([]byte, bool) { return nil, false }
func (c *spyCache) Set(string, []byte)        {}
func (c *spyCache) Del(key string)            { c.deleted = append(c.deleted, key) }

func TestExecuteCreateProfileDefaultsKind(t *testing.T) {
	uc := NewProfileUseCase(newFakeProfileRepo(), &spyCache{}, logger.NewNop())

	out, err := uc.ExecuteCreateProfile(context.Background(), CreateProfileInput{
		OwnerID:  uuid.New(),
		Username: "ada",
	})

	require.NoError(t, err)
	assert.Equal(t, profile.KindPersonal, out.Record.Kind)
	assert.NotEqual(t, uuid.Nil, out.Record.ID)
}

func TestExecuteCreateProfileRequiresUsername(t *testing.T) {
	uc := NewProfileUseCase(newFakeProfileRepo(), &spyCache{}, logger.NewNop())

	_, err := uc.ExecuteCreateProfile(context.Background(), CreateProfileInput{OwnerID: uuid.New()})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestExecuteCreateProfileUsernameConflict(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUseCase(repo, &spyCache{}, logger.NewNop())

	_, err := uc.ExecuteCreateProfile(context.Background(), CreateProfileInput{OwnerID: uuid.New(), Username: "ada"})
	require.NoError(t, err)

	_, err = uc.ExecuteCreateProfile(context.Background(), CreateProfileInput{OwnerID: uuid.New(), Username: "ada"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestExecuteGetProfileOwnershipEnforced(t *testing.T) {
	repo := newFakeProfileRepo()
	owner := uuid.New()
	rec := &profile.Record{ID: uuid.New(), OwnerID: owner, Username: "ada", Kind: profile.KindPersonal}
	repo.byID[rec.ID] = rec

	uc := NewProfileUseCase(repo, &spyCache{}, logger.NewNop())

	out, err := uc.ExecuteGetProfile(context.Background(), GetProfileInput{ProfileID: rec.ID, OwnerID: owner})
	require.NoError(t, err)
	assert.Equal(t, "ada", out.Record.Username)

	_, err = uc.ExecuteGetProfile(context.Background(), GetProfileInput{ProfileID: rec.ID, OwnerID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrPermission)

	_, err = uc.ExecuteGetProfile(context.Background(), GetProfileInput{ProfileID: uuid.New(), OwnerID: owner})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestExecuteUpdateProfileInvalidatesPageCache(t *testing.T) {
	repo := newFakeProfileRepo()
	owner := uuid.New()
	rec := &profile.Record{ID: uuid.New(), OwnerID: owner, Username: "ada", Kind: profile.KindPersonal}
	repo.byID[rec.ID] = rec

	cache := &spyCache{}
	uc := NewProfileUseCase(repo, cache, logger.NewNop())

	out, err := uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		ProfileID: rec.ID,
		OwnerID:   owner,
		Data:      profile.Data{DisplayName: "Ada Lovelace"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", out.Record.Data.DisplayName)
	assert.Equal(t, []string{"page:ada"}, cache.deleted)

	stored, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", stored.Data.DisplayName)
}

func TestExecuteUpdateProfileDeniedForStranger(t *testing.T) {
	repo := newFakeProfileRepo()
	rec := &profile.Record{ID: uuid.New(), OwnerID: uuid.New(), Username: "ada", Kind: profile.KindPersonal}
	repo.byID[rec.ID] = rec

	cache := &spyCache{}
	uc := NewProfileUseCase(repo, cache, logger.NewNop())

	_, err := uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		ProfileID: rec.ID,
		OwnerID:   uuid.New(),
		Data:      profile.Data{DisplayName: "hijacked"},
	})

	assert.ErrorIs(t, err, apperror.ErrPermission)
	assert.Empty(t, cache.deleted)
}
