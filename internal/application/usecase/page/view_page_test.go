package page

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vere-app/vere/internal/domain/analytics"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/internal/domain/theme"
	"github.com/vere-app/vere/internal/render"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

type fakeProfileRepo struct {
	recs map[string]*profile.Record
}

func (r *fakeProfileRepo) GetByUsername(_ context.Context, username string) (*profile.Record, error) {
	if rec, ok := r.recs[username]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, profile.ErrProfileNotFound
}
func (r *fakeProfileRepo) GetByID(context.Context, uuid.UUID) (*profile.Record, error) {
	return nil, profile.ErrProfileNotFound
}
func (r *fakeProfileRepo) ListByOwner(context.Context, uuid.UUID) ([]profile.Record, error) {
	return nil, nil
}
func (r *fakeProfileRepo) Create(context.Context, *profile.Record) error             { return nil }
func (r *fakeProfileRepo) UpdateData(context.Context, uuid.UUID, profile.Data) error { return nil }

type fakeThemeRepo struct {
	themes map[string]*theme.Theme
}

func (r *fakeThemeRepo) GetByID(_ context.Context, id string) (*theme.Theme, error) {
	if t, ok := r.themes[id]; ok {
		return t, nil
	}
	return nil, theme.ErrThemeNotFound
}
func (r *fakeThemeRepo) ListPublished(context.Context) ([]theme.Theme, error)           { return nil, nil }
func (r *fakeThemeRepo) ListByAuthor(context.Context, uuid.UUID) ([]theme.Theme, error) { return nil, nil }
func (r *fakeThemeRepo) Save(context.Context, *theme.Theme) error                       { return nil }
func (r *fakeThemeRepo) SetPublished(context.Context, string, uuid.UUID, bool) error    { return nil }

type fakeAnalyticsRepo struct {
	events []analytics.ViewEvent
}

func (r *fakeAnalyticsRepo) Append(_ context.Context, e analytics.ViewEvent) error {
	r.events = append(r.events, e)
	return nil
}
func (r *fakeAnalyticsRepo) ListByProfile(context.Context, string) ([]analytics.ViewEvent, error) {
	return r.events, nil
}
func (r *fakeAnalyticsRepo) AddSave(context.Context, string) error       { return nil }
func (r *fakeAnalyticsRepo) CountSaves(context.Context, string) (int, error) { return 0, nil }

type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache { return &memCache{entries: make(map[string][]byte)} }

func (c *memCache) Get(key string) ([]byte, bool) {
	v, ok := c.entries[key]
	return v, ok
}
func (c *memCache) Set(key string, value []byte) { c.entries[key] = value }
func (c *memCache) Del(key string)               { delete(c.entries, key) }

func boolPtr(b bool) *bool { return &b }

func newTestUseCase(pRepo *fakeProfileRepo, tRepo *fakeThemeRepo, cache *memCache) *ViewPageUseCase {
	return NewViewPageUseCase(pRepo, tRepo, &fakeAnalyticsRepo{}, nil, cache, logger.NewNop())
}

func TestExecuteUnknownUsername(t *testing.T) {
	uc := newTestUseCase(&fakeProfileRepo{recs: map[string]*profile.Record{}}, &fakeThemeRepo{}, newMemCache())

	_, err := uc.Execute(context.Background(), ViewPageInput{Username: "ghost"})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestExecutePrivateProfileForStranger(t *testing.T) {
	owner := uuid.New()
	repo := &fakeProfileRepo{recs: map[string]*profile.Record{
		"ada": {
			ID: uuid.New(), OwnerID: owner, Username: "ada", Kind: profile.KindPersonal,
			Data: profile.Data{DisplayName: "Ada", IsPublic: boolPtr(false)},
		},
	}}
	uc := newTestUseCase(repo, &fakeThemeRepo{}, newMemCache())

	out, err := uc.Execute(context.Background(), ViewPageInput{Username: "ada"})

	require.NoError(t, err)
	assert.Equal(t, render.StatePrivate, out.Result.State)
}

func TestExecuteOwnerSeesPrivateProfile(t *testing.T) {
	owner := uuid.New()
	repo := &fakeProfileRepo{recs: map[string]*profile.Record{
		"ada": {
			ID: uuid.New(), OwnerID: owner, Username: "ada", Kind: profile.KindPersonal,
			Data: profile.Data{DisplayName: "Ada", IsPublic: boolPtr(false)},
		},
	}}
	uc := newTestUseCase(repo, &fakeThemeRepo{}, newMemCache())

	out, err := uc.Execute(context.Background(), ViewPageInput{Username: "ada", ViewerID: owner})

	require.NoError(t, err)
	assert.Equal(t, render.StateOK, out.Result.State)
}

func TestExecutePreviewThemeRules(t *testing.T) {
	owner := uuid.New()
	author := uuid.New()
	repo := &fakeProfileRepo{recs: map[string]*profile.Record{
		"ada": {
			ID: uuid.New(), OwnerID: owner, Username: "ada", Kind: profile.KindPersonal,
			Data: profile.Data{DisplayName: "Ada", IsPublic: boolPtr(false)},
		},
	}}
	themes := &fakeThemeRepo{themes: map[string]*theme.Theme{
		"draft": {ID: "draft", Name: "Draft", ProfileType: profile.KindPersonal, AuthorID: author},
	}}
	uc := newTestUseCase(repo, themes, newMemCache())

	// An unpublished theme is only previewable by its author.
	_, err := uc.Execute(context.Background(), ViewPageInput{
		Username: "ada", ViewerID: owner, PreviewThemeID: "draft",
	})
	assert.ErrorIs(t, err, apperror.ErrPermission)

	_, err = uc.Execute(context.Background(), ViewPageInput{
		Username: "ada", ViewerID: author, PreviewThemeID: "draft",
	})
	require.NoError(t, err)

	// Builtins are always previewable.
	_, err = uc.Execute(context.Background(), ViewPageInput{
		Username: "ada", ViewerID: owner, PreviewThemeID: "midnight",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), ViewPageInput{
		Username: "ada", ViewerID: owner, PreviewThemeID: "missing",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestExecuteProfessionalOwnerGetsSummary(t *testing.T) {
	owner := uuid.New()
	profileID := uuid.New()
	repo := &fakeProfileRepo{recs: map[string]*profile.Record{
		"pro": {
			ID: profileID, OwnerID: owner, Username: "pro", Kind: profile.KindProfessional,
			Data: profile.Data{DisplayName: "Pro"},
		},
	}}
	analyticsRepo := &fakeAnalyticsRepo{events: []analytics.ViewEvent{
		{ProfileID: profileID.String(), ViewerUsername: "bob", Timestamp: time.Now()},
	}}
	uc := NewViewPageUseCase(repo, &fakeThemeRepo{}, analyticsRepo, nil, newMemCache(), logger.NewNop())

	out, err := uc.Execute(context.Background(), ViewPageInput{Username: "pro", ViewerID: owner})

	require.NoError(t, err)
	assert.Equal(t, render.StateOK, out.Result.State)
	assert.Contains(t, out.Result.Tree.HTML(), "Unique visitors")
}

func TestExecuteHTMLOwnerRequestsSkipCache(t *testing.T) {
	owner := uuid.New()
	repo := &fakeProfileRepo{recs: map[string]*profile.Record{
		"ada": {
			ID: uuid.New(), OwnerID: owner, Username: "ada", Kind: profile.KindPersonal,
			Data: profile.Data{DisplayName: "Ada"},
		},
	}}
	cache := newMemCache()
	uc := newTestUseCase(repo, &fakeThemeRepo{}, cache)

	out, err := uc.ExecuteHTML(context.Background(), ViewPageInput{Username: "ada", ViewerID: owner})

	require.NoError(t, err)
	assert.Contains(t, out.HTML, "Ada")
	assert.Empty(t, cache.entries)
}

func TestExecuteHTMLPrivatePagesAreNotCached(t *testing.T) {
	owner := uuid.New()
	repo := &fakeProfileRepo{recs: map[string]*profile.Record{
		"ada": {
			ID: uuid.New(), OwnerID: owner, Username: "ada", Kind: profile.KindPersonal,
			Data: profile.Data{DisplayName: "Ada", IsPublic: boolPtr(false)},
		},
	}}
	cache := newMemCache()
	uc := newTestUseCase(repo, &fakeThemeRepo{}, cache)

	out, err := uc.ExecuteHTML(context.Background(), ViewPageInput{Username: "ada"})

	require.NoError(t, err)
	assert.Equal(t, render.StatePrivate, out.State)
	assert.Contains(t, out.HTML, "private")
	assert.Empty(t, cache.entries)
}
