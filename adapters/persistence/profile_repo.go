package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) scanRecord(row pgx.Row) (*profile.Record, error) {
	rec := &profile.Record{}
	var dataBytes []byte

	err := row.Scan(
		&rec.ID,
		&rec.OwnerID,
		&rec.Username,
		&rec.Kind,
		&dataBytes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Unmarshal JSONB
	if err := json.Unmarshal(dataBytes, &rec.Data); err != nil {
		r.logger.Warn("Failed to unmarshal profile data", zap.String("profile_id", rec.ID.String()), zap.Error(err))
		rec.Data = profile.Data{}
	}
	return rec, nil
}

func (r *postgresProfileRepo) GetByUsername(ctx context.Context, username string) (*profile.Record, error) {
	query := `
		SELECT id, owner_id, username, kind, data, created_at, updated_at
		FROM profiles
		WHERE username = $1
	`
	rec, err := r.scanRecord(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return rec, nil
}

func (r *postgresProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*profile.Record, error) {
	query := `
		SELECT id, owner_id, username, kind, data, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	rec, err := r.scanRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return rec, nil
}

func (r *postgresProfileRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]profile.Record, error) {
	query := `
		SELECT id, owner_id, username, kind, data, created_at, updated_at
		FROM profiles
		WHERE owner_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to list profiles", err)
	}
	defer rows.Close()

	records := make([]profile.Record, 0)
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan profile", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profiles", err)
	}
	return records, nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, rec *profile.Record) error {
	dataBytes, err := json.Marshal(rec.Data)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile data", err)
	}

	query := `
		INSERT INTO profiles (id, owner_id, username, kind, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.Exec(ctx, query,
		rec.ID,
		rec.OwnerID,
		rec.Username,
		rec.Kind,
		dataBytes,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return profile.ErrUsernameTaken
		}
		return apperror.NewInternal("failed to insert profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) UpdateData(ctx context.Context, id uuid.UUID, data profile.Data) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile data", err)
	}

	query := `
		UPDATE profiles
		SET data = $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, dataBytes, id)
	if err != nil {
		return apperror.NewInternal("failed to update profile data", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}
