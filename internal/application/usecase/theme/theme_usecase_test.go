package theme

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/internal/domain/theme"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

type fakeThemeRepo struct {
	published    []theme.Theme
	byAuthor     map[uuid.UUID][]theme.Theme
	setPublished []string
}

func (r *fakeThemeRepo) GetByID(_ context.Context, id string) (*theme.Theme, error) {
	for i := range r.published {
		if r.published[i].ID == id {
			return &r.published[i], nil
		}
	}
	return nil, theme.ErrThemeNotFound
}

func (r *fakeThemeRepo) ListPublished(context.Context) ([]theme.Theme, error) {
	return r.published, nil
}

func (r *fakeThemeRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]theme.Theme, error) {
	return r.byAuthor[authorID], nil
}

func (r *fakeThemeRepo) Save(context.Context, *theme.Theme) error { return nil }

func (r *fakeThemeRepo) SetPublished(_ context.Context, id string, _ uuid.UUID, _ bool) error {
	r.setPublished = append(r.setPublished, id)
	return nil
}

type noopCache struct{}

func (noopCache) Get(string) ([]byte, bool) { return nil, false }
func (noopCache) Set(string, []byte)        {}
func (noopCache) Del(string)                {}

func TestExecuteListThemesGroupsSources(t *testing.T) {
	author := uuid.New()
	repo := &fakeThemeRepo{
		published: []theme.Theme{
			{ID: "c1", Name: "Community Personal", ProfileType: profile.KindPersonal, Published: true},
			{ID: "c2", Name: "Community Pro", ProfileType: profile.KindProfessional, Published: true},
		},
		byAuthor: map[uuid.UUID][]theme.Theme{
			author: {
				{ID: "o1", Name: "Mine Personal", ProfileType: profile.KindPersonal, AuthorID: author},
				{ID: "o2", Name: "Mine Pro", ProfileType: profile.KindProfessional, AuthorID: author},
			},
		},
	}
	uc := NewThemeUseCase(repo, nil, nil, noopCache{}, logger.NewNop())

	out, err := uc.ExecuteListThemes(context.Background(), ListThemesInput{
		ProfileType: profile.KindPersonal,
		AuthorID:    author,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Builtin)
	require.Len(t, out.Community, 1)
	assert.Equal(t, "c1", out.Community[0].ID)
	require.Len(t, out.Own, 1)
	assert.Equal(t, "o1", out.Own[0].ID)
}

func TestExecuteListThemesAnonymousSkipsOwn(t *testing.T) {
	repo := &fakeThemeRepo{
		byAuthor: map[uuid.UUID][]theme.Theme{
			uuid.Nil: {{ID: "ghost", Name: "Ghost", ProfileType: profile.KindPersonal}},
		},
	}
	uc := NewThemeUseCase(repo, nil, nil, noopCache{}, logger.NewNop())

	out, err := uc.ExecuteListThemes(context.Background(), ListThemesInput{ProfileType: profile.KindPersonal})

	require.NoError(t, err)
	assert.Empty(t, out.Own)
}

func TestExecuteListThemesNoTypeFilterReturnsAll(t *testing.T) {
	repo := &fakeThemeRepo{
		published: []theme.Theme{
			{ID: "c1", ProfileType: profile.KindPersonal},
			{ID: "c2", ProfileType: profile.KindProfessional},
		},
	}
	uc := NewThemeUseCase(repo, nil, nil, noopCache{}, logger.NewNop())

	out, err := uc.ExecuteListThemes(context.Background(), ListThemesInput{})

	require.NoError(t, err)
	assert.Len(t, out.Community, 2)
}

func TestExecutePublishThemeRejectsBuiltin(t *testing.T) {
	repo := &fakeThemeRepo{}
	uc := NewThemeUseCase(repo, nil, nil, noopCache{}, logger.NewNop())

	err := uc.ExecutePublishTheme(context.Background(), PublishThemeInput{
		ThemeID:   "midnight",
		AuthorID:  uuid.New(),
		Published: true,
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, repo.setPublished)
}

func TestExecutePublishThemeUnpublish(t *testing.T) {
	repo := &fakeThemeRepo{}
	uc := NewThemeUseCase(repo, nil, nil, noopCache{}, logger.NewNop())

	err := uc.ExecutePublishTheme(context.Background(), PublishThemeInput{
		ThemeID:   "user-theme",
		AuthorID:  uuid.New(),
		Published: false,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"user-theme"}, repo.setPublished)
}
