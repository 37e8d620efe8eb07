package feedhouse

// Campaign represents one item of the FeedHouse feed-campaigns response.
// The endpoint returns a flat JSON array; an empty array means the cursor
// is past the last campaign.
type Campaign struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	IconURL    string `json:"icon"`
	ImageURL   string `json:"image"`
	TargetURL  string `json:"url"`
	CountryISO string `json:"countryIso"`
	Format     string `json:"format"`
	AdNetwork  string `json:"adNetwork"`
	IsAdult    bool   `json:"isAdult"`
	CreatedAt  string `json:"createdAt"`
}
