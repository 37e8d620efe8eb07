package pushhouse

// Ad represents one item of the Push.House /v1/ads/{page}/{status}
// response. Pages are 1-based; an empty array means the page is past the
// end of pagination.
type Ad struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	IconURL   string  `json:"icon"`
	ImageURL  string  `json:"img"`
	TargetURL string  `json:"url"`
	CPC       float64 `json:"cpc"`
	Country   string  `json:"country"`
	IsAdult   bool    `json:"isAdult"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"created_at"`
}
