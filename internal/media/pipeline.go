// Package media stages uploaded images, stores them, runs the remote scan
// and records the result, and serves the scan history.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"fruitscan-backend/internal/blob"
	"fruitscan-backend/internal/models"
	"fruitscan-backend/internal/scanner"
	"fruitscan-backend/internal/store"
)

const (
	scansPath   = "scans"
	historyPath = "history"
)

// Service executes the ingest pipeline: stage the image locally, persist it
// to the object store, scan it, and record the result twice (flat scans
// collection plus timestamped history collection). The steps are strictly
// sequential; a failure aborts without rolling back completed side effects,
// so an uploaded blob can outlive a failed scan.
type Service struct {
	blobs    blob.Store
	scanner  scanner.Scanner
	store    store.Store
	stageDir string
	log      *slog.Logger
}

func NewService(blobs blob.Store, sc scanner.Scanner, st store.Store, stageDir string, log *slog.Logger) *Service {
	if stageDir == "" {
		stageDir = os.TempDir()
	}
	return &Service{blobs: blobs, scanner: sc, store: st, stageDir: stageDir, log: log}
}

// Ingest runs the pipeline for one uploaded image and returns the scan
// result. The staged copy is uniquely named so concurrent uploads never
// collide, and it is removed on every exit path.
func (s *Service) Ingest(ctx context.Context, image io.Reader, originalName, contentType string) (json.RawMessage, error) {
	fileName := uuid.New().String() + "-" + filepath.Base(originalName)
	stagedPath := filepath.Join(s.stageDir, fileName)

	if err := stage(image, stagedPath); err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(stagedPath); err != nil {
			s.log.Warn("failed to remove staged file", "path", stagedPath, "error", err)
		}
	}()

	imageURL, err := s.blobs.Upload(ctx, stagedPath, "images/"+fileName, contentType)
	if err != nil {
		return nil, err
	}

	scanResult, err := s.scanner.Scan(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Push(ctx, scansPath, scanResult); err != nil {
		return nil, err
	}
	entry := models.HistoryEntry{
		ImageURL:   imageURL,
		ScanResult: scanResult,
		Timestamp:  time.Now().UnixMilli(),
	}
	if _, err := s.store.Push(ctx, historyPath, entry); err != nil {
		return nil, err
	}

	return scanResult, nil
}

func stage(image io.Reader, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stage image: %w", err)
	}
	if _, err := io.Copy(f, image); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("stage image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("stage image: %w", err)
	}
	return nil
}

// ListHistory reads the whole history collection ordered by capture time,
// oldest first, deriving a display timestamp for each entry. An empty or
// absent collection yields an empty slice.
func (s *Service) ListHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	var tree map[string]models.HistoryEntry
	if err := s.store.Get(ctx, historyPath, &tree); err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(tree))
	for _, e := range tree {
		e.ScanTime = time.UnixMilli(e.Timestamp).Local().Format("1/2/2006, 3:04:05 PM")
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp < entries[j].Timestamp })

	return entries, nil
}
