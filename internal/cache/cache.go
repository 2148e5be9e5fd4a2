package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"dealer-site/internal/platform/models"

	"github.com/rs/zerolog"
)

// Option is custom configuration of FileStore.
type Option func(s *FileStore)

// FileStore persists listing snapshots to a single JSON file. The store is
// best effort: a missing, corrupted or unwritable file is logged and treated
// as a cache miss, never surfaced to the caller.
type FileStore struct {
	path   string
	maxAge time.Duration
	clock  Clock
	logger *zerolog.Logger
}

// NewFileStore returns new FileStore keeping its snapshot at path.
// Snapshots older than maxAge no longer count as cache hits.
func NewFileStore(path string, maxAge time.Duration, logger *zerolog.Logger, ops ...Option) *FileStore {
	store := &FileStore{
		path:   path,
		maxAge: maxAge,
		clock:  systemClock{},
		logger: logger,
	}

	for _, op := range ops {
		op(store)
	}

	return store
}

// Read returns the cached snapshot if the backing file exists, parses, and is
// younger than the freshness window. Anything else is a miss.
func (s *FileStore) Read() (*models.Snapshot, bool) {
	snapshot, ok := s.load()
	if !ok {
		return nil, false
	}

	if s.clock.Timestamp()-snapshot.Timestamp >= s.maxAge.Seconds() {
		s.logger.Debug().Str("path", s.path).Msg("cache expired")
		return nil, false
	}

	return snapshot, true
}

// ReadStale returns the last successfully written raw data regardless of age.
// Used only as a fallback when the live upstream fetch fails.
func (s *FileStore) ReadStale() ([]models.RawListing, bool) {
	snapshot, ok := s.load()
	if !ok {
		return nil, false
	}

	return snapshot.Data, true
}

// Write persists a new snapshot stamped with the current time. The snapshot
// goes through a temp file and an atomic rename so a concurrent reader never
// observes a partial write.
func (s *FileStore) Write(data []models.RawListing) {
	if data == nil {
		data = []models.RawListing{}
	}

	snapshot := models.Snapshot{
		Timestamp: s.clock.Timestamp(),
		Data:      data,
	}

	content, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("can't marshal cache snapshot")
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("can't create cache temp file")
		return
	}

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		s.logger.Error().Err(err).Str("path", s.path).Msg("can't write cache temp file")
		return
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		s.logger.Error().Err(err).Str("path", s.path).Msg("can't close cache temp file")
		return
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		s.logger.Error().Err(err).Str("path", s.path).Msg("can't replace cache file")
		return
	}

	s.logger.Debug().Int("listings", len(data)).Str("path", s.path).Msg("cache updated")
}

func (s *FileStore) load() (*models.Snapshot, bool) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("can't read cache file")
		}
		return nil, false
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(content, &snapshot); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("cache file corrupted")
		return nil, false
	}

	return &snapshot, true
}

// WithClock sets FileStore's custom Clock.
func WithClock(c Clock) Option {
	return func(s *FileStore) {
		s.clock = c
	}
}
