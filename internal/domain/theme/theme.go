package theme

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vere-app/vere/internal/domain/profile"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
	ErrMalformed     = errors.New("malformed theme")
)

// Recognized token keys. Applying a theme only ever touches fields behind
// these keys; anything else in a theme payload is ignored.
const (
	TokenBgColor      = "bgColor"
	TokenBgImage      = "bgImage"
	TokenBgOverlay    = "bgOverlay"
	TokenBlockColor   = "blockColor"
	TokenNameColor    = "nameColor"
	TokenDescColor    = "descColor"
	TokenFontFamily   = "fontFamily"
	TokenAccentColor  = "accentColor"
	TokenButtonColor  = "buttonColor"
	TokenLinkColor    = "linkColor"
	TokenSectionBg    = "sectionBg"
	TokenTextColor    = "textColor"
	TokenHeadingColor = "headingColor"
)

// TokenKeys is the whitelist in a fixed order.
var TokenKeys = []string{
	TokenBgColor,
	TokenBgImage,
	TokenBgOverlay,
	TokenBlockColor,
	TokenNameColor,
	TokenDescColor,
	TokenFontFamily,
	TokenAccentColor,
	TokenButtonColor,
	TokenLinkColor,
	TokenSectionBg,
	TokenTextColor,
	TokenHeadingColor,
}

// Theme is a named token set for one profile kind. Built-in themes carry
// slug IDs; community and user-saved themes carry UUID strings.
type Theme struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ProfileType profile.Kind   `json:"profile_type"`
	Tokens      map[string]any `json:"tokens"`
	AuthorID    uuid.UUID      `json:"author_id,omitempty"`
	Published   bool           `json:"published"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Validate enforces the fail-fast contract for authored themes.
func (t *Theme) Validate() error {
	if t.Name == "" {
		return errors.Join(ErrMalformed, errors.New("name is required"))
	}
	if t.ProfileType == "" {
		return errors.Join(ErrMalformed, errors.New("profileType is required"))
	}
	return nil
}

// BuildUpdates projects the whitelisted, non-nil token values of a theme
// into an update map. Keys absent from the theme are excluded rather than
// defaulted, so applying a minimal theme never resets fields.
func BuildUpdates(t *Theme) map[string]any {
	updates := make(map[string]any)
	if t == nil || t.Tokens == nil {
		return updates
	}
	for _, key := range TokenKeys {
		value, ok := t.Tokens[key]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			continue
		}
		updates[key] = value
	}
	return updates
}

// FromProfile extracts the current whitelisted token values of a profile
// into a new theme. It is the inverse of BuildUpdates + ApplyUpdates.
func FromProfile(name string, kind profile.Kind, data *profile.Data) (*Theme, error) {
	if kind == "" {
		return nil, errors.Join(ErrMalformed, errors.New("profileType is required"))
	}
	if data == nil {
		return nil, errors.Join(ErrMalformed, errors.New("profileData is required"))
	}
	t := &Theme{
		ID:          uuid.NewString(),
		Name:        name,
		ProfileType: kind,
		Tokens:      make(map[string]any),
		CreatedAt:   time.Now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	putString := func(key, value string) {
		if value != "" {
			t.Tokens[key] = value
		}
	}
	putString(TokenBgColor, data.BgColor)
	putString(TokenBgImage, data.BgImage)
	if data.BgOverlay != nil {
		t.Tokens[TokenBgOverlay] = *data.BgOverlay
	}
	putString(TokenBlockColor, data.BlockColor)
	putString(TokenNameColor, data.NameColor)
	putString(TokenDescColor, data.DescColor)
	putString(TokenFontFamily, data.FontFamily)
	putString(TokenAccentColor, data.AccentColor)
	putString(TokenButtonColor, data.ButtonColor)
	putString(TokenLinkColor, data.LinkColor)
	putString(TokenSectionBg, data.SectionBg)
	putString(TokenTextColor, data.TextColor)
	putString(TokenHeadingColor, data.HeadingColor)

	return t, nil
}

// ApplyUpdates overwrites the profile fields named by the update map.
// Unknown keys are ignored; fields not in the map are left untouched.
func ApplyUpdates(data *profile.Data, updates map[string]any) {
	for key, value := range updates {
		switch key {
		case TokenBgColor:
			if s, ok := value.(string); ok {
				data.BgColor = s
			}
		case TokenBgImage:
			if s, ok := value.(string); ok {
				data.BgImage = s
			}
		case TokenBgOverlay:
			if f, ok := toFloat(value); ok {
				data.BgOverlay = &f
			}
		case TokenBlockColor:
			if s, ok := value.(string); ok {
				data.BlockColor = s
			}
		case TokenNameColor:
			if s, ok := value.(string); ok {
				data.NameColor = s
			}
		case TokenDescColor:
			if s, ok := value.(string); ok {
				data.DescColor = s
			}
		case TokenFontFamily:
			if s, ok := value.(string); ok {
				data.FontFamily = s
			}
		case TokenAccentColor:
			if s, ok := value.(string); ok {
				data.AccentColor = s
			}
		case TokenButtonColor:
			if s, ok := value.(string); ok {
				data.ButtonColor = s
			}
		case TokenLinkColor:
			if s, ok := value.(string); ok {
				data.LinkColor = s
			}
		case TokenSectionBg:
			if s, ok := value.(string); ok {
				data.SectionBg = s
			}
		case TokenTextColor:
			if s, ok := value.(string); ok {
				data.TextColor = s
			}
		case TokenHeadingColor:
			if s, ok := value.(string); ok {
				data.HeadingColor = s
			}
		}
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*Theme, error)
	ListPublished(ctx context.Context) ([]Theme, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Theme, error)
	Save(ctx context.Context, t *Theme) error
	SetPublished(ctx context.Context, id string, authorID uuid.UUID, published bool) error
}
