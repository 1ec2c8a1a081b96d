// Package file provides a signal store that reads scraped JSON
// snapshots from a directory. Each collection lives in its own file
// (topics.json, modifiers.json, videos.json, questions.json,
// channels.json); a missing file yields an empty collection and
// malformed records are skipped, not fatal.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sehat-labs/gapscan/internal/core/domain"
	"github.com/sehat-labs/gapscan/internal/core/ports/driven"
	"github.com/sehat-labs/gapscan/internal/logger"
)

// Ensure SignalStore implements the interface.
var _ driven.SignalStore = (*SignalStore)(nil)

// Snapshot file names within the snapshot directory.
const (
	topicsFile    = "topics.json"
	modifiersFile = "modifiers.json"
	videosFile    = "videos.json"
	questionsFile = "questions.json"
	channelsFile  = "channels.json"
)

// SignalStore reads signal collections from JSON files in a snapshot
// directory. Reads are performed on every call so a refreshed snapshot
// is picked up without restarting.
type SignalStore struct {
	dir string
}

// NewSignalStore creates a signal store over the given snapshot
// directory. The directory must exist; its files may not.
func NewSignalStore(dir string) (*SignalStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrStoreUnavailable, dir)
	}
	return &SignalStore{dir: dir}, nil
}

// Dir returns the snapshot directory path.
func (s *SignalStore) Dir() string {
	return s.dir
}

// Topics returns the seed topic catalog.
func (s *SignalStore) Topics(_ context.Context) ([]domain.Topic, error) {
	raw, err := s.readRecords(topicsFile)
	if err != nil {
		return nil, err
	}

	topics := make([]domain.Topic, 0, len(raw))
	for i, msg := range raw {
		var t domain.Topic
		if err := json.Unmarshal(msg, &t); err != nil {
			logger.Warn("skipping topic record %d: %v", i, err)
			continue
		}
		if !t.Valid() {
			logger.Warn("skipping invalid topic record %d", i)
			continue
		}
		topics = append(topics, t)
	}
	return topics, nil
}

// Modifiers returns the modifier catalog.
func (s *SignalStore) Modifiers(_ context.Context) ([]domain.Modifier, error) {
	raw, err := s.readRecords(modifiersFile)
	if err != nil {
		return nil, err
	}

	modifiers := make([]domain.Modifier, 0, len(raw))
	for i, msg := range raw {
		var m domain.Modifier
		if err := json.Unmarshal(msg, &m); err != nil {
			logger.Warn("skipping modifier record %d: %v", i, err)
			continue
		}
		if !m.Valid() {
			logger.Warn("skipping invalid modifier record %d", i)
			continue
		}
		modifiers = append(modifiers, m)
	}
	return modifiers, nil
}

// Videos returns the scraped video collection.
func (s *SignalStore) Videos(_ context.Context) ([]domain.Video, error) {
	raw, err := s.readRecords(videosFile)
	if err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(raw))
	for i, msg := range raw {
		var v domain.Video
		if err := json.Unmarshal(msg, &v); err != nil {
			logger.Warn("skipping video record %d: %v", i, err)
			continue
		}
		if !v.Valid() {
			logger.Warn("skipping invalid video record %d", i)
			continue
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// Questions returns the scraped question collection.
func (s *SignalStore) Questions(_ context.Context) ([]domain.Question, error) {
	raw, err := s.readRecords(questionsFile)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(raw))
	for i, msg := range raw {
		var q domain.Question
		if err := json.Unmarshal(msg, &q); err != nil {
			logger.Warn("skipping question record %d: %v", i, err)
			continue
		}
		if !q.Valid() {
			logger.Warn("skipping invalid question record %d", i)
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Channels returns the channel catalog, empty when the file is absent.
func (s *SignalStore) Channels(_ context.Context) (*domain.ChannelCatalog, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, channelsFile))
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no %s in snapshot, channel catalog empty", channelsFile)
			return &domain.ChannelCatalog{Groups: map[string][]domain.ChannelProfile{}}, nil
		}
		return nil, fmt.Errorf("read %s: %w", channelsFile, err)
	}

	var catalog domain.ChannelCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse %s: %w", channelsFile, err)
	}
	if catalog.Groups == nil {
		catalog.Groups = map[string][]domain.ChannelProfile{}
	}
	return &catalog, nil
}

// readRecords loads a JSON array file as raw records so that one bad
// record cannot poison the whole collection. A missing file is an
// empty collection.
func (s *SignalStore) readRecords(name string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no %s in snapshot, collection empty", name)
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return raw, nil
}
