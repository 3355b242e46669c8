package dto

import "encoding/json"

// UploadResponse acknowledges a processed upload without exposing the scan
// result.
type UploadResponse struct {
	Message string `json:"message"`
}

// CaptureResponse carries the scan result back to the client.
type CaptureResponse struct {
	ScanResult json.RawMessage `json:"scanResult"`
}
