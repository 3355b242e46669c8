package models

import "encoding/json"

// HistoryEntry is one append-only record per processed upload, stored under
// history/<pushKey>. ScanResult is whatever JSON the scan service returned;
// no schema is enforced locally.
type HistoryEntry struct {
	ImageURL   string          `json:"imageUrl"`
	ScanResult json.RawMessage `json:"scanResult"`
	// Timestamp is epoch milliseconds at record time.
	Timestamp int64 `json:"timestamp"`
	// ScanTime is derived from Timestamp when the entry is read back;
	// it is never stored.
	ScanTime string `json:"scanTime,omitempty"`
}
