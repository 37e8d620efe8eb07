package domain

import "time"

type CreativeStatus string

const (
	StatusActive   CreativeStatus = "active"
	StatusInactive CreativeStatus = "inactive"
)

type Format string

const (
	FormatPush   Format = "push"
	FormatInpage Format = "inpage"
)

type Creative struct {
	ID          int64          `db:"id"`
	SourceID    string         `db:"source_id"` // identifies the source (e.g., "feedhouse", "pushhouse")
	ExternalID  int64          `db:"external_id"`
	Title       string         `db:"title"`
	Text        string         `db:"text"`
	CountryCode string         `db:"country_code"`
	AdNetwork   string         `db:"ad_network"`
	Format      Format         `db:"format"`
	Status      CreativeStatus `db:"status"`
	IconURL     string         `db:"icon_url"`
	ImageURL    string         `db:"image_url"`
	TargetURL   string         `db:"target_url"`
	CPC         float64        `db:"cpc"`
	IsAdult     bool           `db:"is_adult"`
	ContentHash string         `db:"content_hash"`

	ExternalCreatedAt time.Time `db:"external_created_at"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
