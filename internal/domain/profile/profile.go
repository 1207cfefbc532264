package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username already claimed")
)

// Kind is the stored profile variant. It decides which renderer family
// handles the public page.
type Kind string

const (
	KindPersonal     Kind = "personal"
	KindVtree        Kind = "vtree"
	KindResume       Kind = "resume"
	KindProfessional Kind = "professional"
)

// Personal layout names. Unknown values fall back to LayoutDefault.
const (
	LayoutDefault  = "default"
	LayoutLinktree = "linktree"
	LayoutLinkedin = "linkedin"
	LayoutGuns     = "guns"
	LayoutMinimal  = "minimal"
	LayoutCustom   = "custom"
)

// Professional view modes. Unknown values fall back to ViewModeStandard.
const (
	ViewModeStandard = "standard"
	ViewModeShowcase = "showcase"
	ViewModeMinimal  = "minimal"
)

// Section kinds. Lists are user-authored, so an unrecognized kind is
// skipped at render time instead of failing the page.
const (
	SectionText      = "text"
	SectionBullets   = "bullets"
	SectionContact   = "contact"
	SectionImageText = "imageText"
	SectionLink      = "link"
)

type Section struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Order    int      `json:"order"`
	Title    string   `json:"title,omitempty"`
	Content  string   `json:"content,omitempty"`
	Items    []string `json:"items,omitempty"`
	Address  string   `json:"address,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`
	Website  string   `json:"website,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	URL      string   `json:"url,omitempty"`
}

type ContactLink struct {
	Service string `json:"service"`
	URL     string `json:"url"`
}

type Contact struct {
	Email   string        `json:"email,omitempty"`
	Phone   string        `json:"phone,omitempty"`
	Address string        `json:"address,omitempty"`
	Links   []ContactLink `json:"links,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
	Description string `json:"description,omitempty"`
}

type FeaturedItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	URL         string `json:"url,omitempty"`
}

type Activity struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date,omitempty"`
}

// VereElement is one item on the free-form absolute canvas. A profile
// carrying any of these bypasses the named layouts entirely.
type VereElement struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"` // text | image | shape
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Text     string  `json:"text,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Color    string  `json:"color,omitempty"`
	FontSize string  `json:"fontSize,omitempty"`
}

// LayoutSettings only drive the `custom` personal layout.
type LayoutSettings struct {
	Alignment   string `json:"alignment,omitempty"`  // left | center | right
	AvatarSize  string `json:"avatarSize,omitempty"` // small | medium | large
	MaxWidth    int    `json:"maxWidth,omitempty"`
	ShowAvatar  *bool  `json:"showAvatar,omitempty"`
	ShowTagline *bool  `json:"showTagline,omitempty"`
	ShowSocial  *bool  `json:"showSocial,omitempty"`
}

// Data is the themable, renderable payload nested under a record.
// Pointer fields distinguish "absent" from zero so theme application
// and rendering fallbacks behave per contract.
type Data struct {
	DisplayName string `json:"displayName,omitempty"`
	Username    string `json:"username,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	JobTitle    string `json:"jobTitle,omitempty"`
	Tagline     string `json:"tagline,omitempty"`
	About       string `json:"about,omitempty"`

	BgColor      string   `json:"bgColor,omitempty"`
	BgImage      string   `json:"bgImage,omitempty"`
	BgOverlay    *float64 `json:"bgOverlay,omitempty"`
	BlockColor   string   `json:"blockColor,omitempty"`
	NameColor    string   `json:"nameColor,omitempty"`
	DescColor    string   `json:"descColor,omitempty"`
	FontFamily   string   `json:"fontFamily,omitempty"`
	AccentColor  string   `json:"accentColor,omitempty"`
	ButtonColor  string   `json:"buttonColor,omitempty"`
	LinkColor    string   `json:"linkColor,omitempty"`
	SectionBg    string   `json:"sectionBg,omitempty"`
	TextColor    string   `json:"textColor,omitempty"`
	HeadingColor string   `json:"headingColor,omitempty"`

	Layout         string         `json:"layout,omitempty"`
	ViewMode       string         `json:"viewMode,omitempty"`
	LayoutSettings LayoutSettings `json:"layoutSettings,omitempty"`

	Sections       []Section         `json:"sections,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
	Contact        Contact           `json:"contact,omitempty"`
	Experience     []Experience      `json:"experience,omitempty"`
	Education      []Education       `json:"education,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	FeaturedItems  []FeaturedItem    `json:"featuredItems,omitempty"`
	RecentActivity []Activity        `json:"recentActivity,omitempty"`
	VereElements   []VereElement     `json:"vereElements,omitempty"`

	AudioURL       string  `json:"audioUrl,omitempty"`
	AudioStartTime float64 `json:"audioStartTime,omitempty"`
	AudioEndTime   float64 `json:"audioEndTime,omitempty"`

	IsPublic *bool `json:"isPublic,omitempty"`
}

// Record is the stored entity. Only the profile repository writes it;
// the rendering core reads snapshots.
type Record struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Username  string    `json:"username"`
	Kind      Kind      `json:"kind"`
	Data      Data      `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the single flattened view renderers consume. Building it
// here resolves the record/data field shadowing (top-level username
// always wins) in one place instead of at every call site.
type Profile struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Username  string
	Kind      Kind
	Data      Data
	UpdatedAt time.Time
}

func FromRecord(rec Record) Profile {
	d := rec.Data
	d.Username = rec.Username
	kind := rec.Kind
	if kind == "" {
		kind = KindPersonal
	}
	return Profile{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Username:  rec.Username,
		Kind:      kind,
		Data:      d,
		UpdatedAt: rec.UpdatedAt,
	}
}

// IsPublic defaults to true when the flag was never stored.
func (p Profile) IsPublic() bool {
	return p.Data.IsPublic == nil || *p.Data.IsPublic
}

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Record, error)
	Create(ctx context.Context, rec *Record) error
	UpdateData(ctx context.Context, id uuid.UUID, data Data) error
}
