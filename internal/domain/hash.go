package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

type hashFields struct {
	ExternalID int64  `json:"external_id"`
	Source     string `json:"source"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Country    string `json:"country"`
	AdNetwork  string `json:"adNetwork"`
}

// ContentHash computes the dedup hash of a creative over the canonical
// field subset. Two fetches of unchanged content hash identically. HTML
// escaping is disabled so multi-byte titles produce the same bytes on
// every platform.
func ContentHash(c *Creative) string {
	fields := hashFields{
		ExternalID: c.ExternalID,
		Source:     c.SourceID,
		Title:      c.Title,
		Text:       c.Text,
		Country:    c.CountryCode,
		AdNetwork:  c.AdNetwork,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode cannot fail for a struct of plain fields.
	_ = enc.Encode(fields)

	sum := sha256.Sum256(bytes.TrimRight(buf.Bytes(), "\n"))
	return hex.EncodeToString(sum[:])
}
