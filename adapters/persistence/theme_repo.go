package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vere-app/vere/internal/domain/theme"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

type postgresThemeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresThemeRepo(db *pgxpool.Pool, logger logger.Logger) theme.Repository {
	return &postgresThemeRepo{db: db, logger: logger}
}

var psqlTheme = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const themeColumns = "id, name, profile_type, tokens, author_id, published, created_at"

func (r *postgresThemeRepo) scanTheme(row pgx.Row) (*theme.Theme, error) {
	t := &theme.Theme{}
	var tokenBytes []byte

	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.ProfileType,
		&tokenBytes,
		&t.AuthorID,
		&t.Published,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tokenBytes, &t.Tokens); err != nil {
		r.logger.Warn("Failed to unmarshal theme tokens", zap.String("theme_id", t.ID), zap.Error(err))
		t.Tokens = map[string]any{}
	}
	return t, nil
}

func (r *postgresThemeRepo) GetByID(ctx context.Context, id string) (*theme.Theme, error) {
	query := `
		SELECT ` + themeColumns + `
		FROM themes
		WHERE id = $1
	`
	t, err := r.scanTheme(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, theme.ErrThemeNotFound
		}
		return nil, apperror.NewInternal("failed to query theme", err)
	}
	return t, nil
}

func (r *postgresThemeRepo) listBase(ctx context.Context, builder sq.SelectBuilder) ([]theme.Theme, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build theme query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to execute theme query", err)
	}
	defer rows.Close()

	themes := make([]theme.Theme, 0)
	for rows.Next() {
		t, err := r.scanTheme(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan theme", err)
		}
		themes = append(themes, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating themes", err)
	}
	return themes, nil
}

func (r *postgresThemeRepo) ListPublished(ctx context.Context) ([]theme.Theme, error) {
	builder := psqlTheme.
		Select(themeColumns).
		From("themes").
		Where(sq.Eq{"published": true}).
		OrderBy("created_at DESC")
	return r.listBase(ctx, builder)
}

func (r *postgresThemeRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]theme.Theme, error) {
	builder := psqlTheme.
		Select(themeColumns).
		From("themes").
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("created_at DESC")
	return r.listBase(ctx, builder)
}

func (r *postgresThemeRepo) Save(ctx context.Context, t *theme.Theme) error {
	tokenBytes, err := json.Marshal(t.Tokens)
	if err != nil {
		return apperror.NewInternal("failed to marshal theme tokens", err)
	}

	query := `
		INSERT INTO themes (id, name, profile_type, tokens, author_id, published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			tokens = EXCLUDED.tokens
	`
	_, err = r.db.Exec(ctx, query,
		t.ID,
		t.Name,
		t.ProfileType,
		tokenBytes,
		t.AuthorID,
		t.Published,
		t.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save theme", err)
	}
	return nil
}

func (r *postgresThemeRepo) SetPublished(ctx context.Context, id string, authorID uuid.UUID, published bool) error {
	query := `
		UPDATE themes
		SET published = $1
		WHERE id = $2 AND author_id = $3
	`
	tag, err := r.db.Exec(ctx, query, published, id, authorID)
	if err != nil {
		return apperror.NewInternal("failed to update theme", err)
	}
	if tag.RowsAffected() == 0 {
		return theme.ErrThemeNotFound
	}
	return nil
}
