package domain

// Page is one fetched and normalized page from a cursor-paginated source.
// RawCount and MaxID cover every item the API returned, including records
// the normalizer rejected, because the cursor must advance past them too.
type Page struct {
	Creatives []Creative
	RawCount  int
	Invalid   int
	MaxID     int64
}

// Snapshot is the result of crawling a full-snapshot source to exhaustion.
// Complete is true only when a terminal page (empty, or a 404 past the
// first page) was actually observed; reconciliation against an incomplete
// snapshot would wrongly deactivate records the crawl simply never reached.
type Snapshot struct {
	Creatives []Creative
	Pages     int
	Invalid   int
	Complete  bool
}
