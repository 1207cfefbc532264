package http

import (
	"time"

	"github.com/vere-app/vere/internal/domain/analytics"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/internal/domain/theme"
	"github.com/vere-app/vere/internal/render"
)

// Profile DTOs

type ProfileDTO struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Kind      profile.Kind `json:"kind"`
	Data      profile.Data `json:"data"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func ToProfileDTO(rec *profile.Record) ProfileDTO {
	return ProfileDTO{
		ID:        rec.ID.String(),
		Username:  rec.Username,
		Kind:      rec.Kind,
		Data:      rec.Data,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

type CreateProfileRequest struct {
	Username string       `json:"username" binding:"required"`
	Kind     profile.Kind `json:"kind"`
	Data     profile.Data `json:"data"`
}

type UpdateProfileRequest struct {
	Data profile.Data `json:"data" binding:"required"`
}

// Theme DTOs

type ThemeDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ProfileType profile.Kind   `json:"profile_type"`
	Tokens      map[string]any `json:"tokens"`
	Published   bool           `json:"published"`
}

func ToThemeDTO(t theme.Theme) ThemeDTO {
	return ThemeDTO{
		ID:          t.ID,
		Name:        t.Name,
		ProfileType: t.ProfileType,
		Tokens:      t.Tokens,
		Published:   t.Published,
	}
}

func ToThemeDTOs(themes []theme.Theme) []ThemeDTO {
	dtos := make([]ThemeDTO, len(themes))
	for i, t := range themes {
		dtos[i] = ToThemeDTO(t)
	}
	return dtos
}

type ApplyThemeRequest struct {
	ThemeID string `json:"theme_id" binding:"required"`
}

type CreateThemeRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

type PublishThemeRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// Page DTOs

type PageDTO struct {
	Username string       `json:"username"`
	Kind     profile.Kind `json:"kind"`
	State    render.State `json:"state"`
	Tree     *render.Node `json:"tree"`
}

// Analytics DTOs

type SummaryDTO struct {
	TotalViews      int            `json:"total_views"`
	UniqueViewers   int            `json:"unique_viewers"`
	TodayViews      int            `json:"today_views"`
	Last7DaysViews  int            `json:"last_7_days_views"`
	Last30DaysViews int            `json:"last_30_days_views"`
	ViewsByDate     map[string]int `json:"views_by_date"`
	Saves           int            `json:"saves"`
	Vheart          int            `json:"vheart"`
}

func ToSummaryDTO(s analytics.Summary, saves, vheart int) SummaryDTO {
	return SummaryDTO{
		TotalViews:      s.TotalViews,
		UniqueViewers:   s.UniqueViewers,
		TodayViews:      s.TodayViews,
		Last7DaysViews:  s.Last7DaysViews,
		Last30DaysViews: s.Last30DaysViews,
		ViewsByDate:     s.ViewsByDate,
		Saves:           saves,
		Vheart:          vheart,
	}
}
