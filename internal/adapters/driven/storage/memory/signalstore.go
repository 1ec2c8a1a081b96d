// Package memory provides in-memory store implementations, used in
// tests and for composing snapshots programmatically.
package memory

import (
	"context"
	"sync"

	"github.com/sehat-labs/gapscan/internal/core/domain"
	"github.com/sehat-labs/gapscan/internal/core/ports/driven"
)

// Ensure SignalStore implements the interface.
var _ driven.SignalStore = (*SignalStore)(nil)

// SignalStore is an in-memory implementation of driven.SignalStore.
// Collections default to empty, mirroring a partial snapshot.
type SignalStore struct {
	mu        sync.RWMutex
	topics    []domain.Topic
	modifiers []domain.Modifier
	videos    []domain.Video
	questions []domain.Question
	channels  *domain.ChannelCatalog
}

// NewSignalStore creates an empty in-memory signal store.
func NewSignalStore() *SignalStore {
	return &SignalStore{}
}

// SetTopics replaces the topic catalog.
func (s *SignalStore) SetTopics(topics []domain.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = append([]domain.Topic(nil), topics...)
}

// SetModifiers replaces the modifier catalog.
func (s *SignalStore) SetModifiers(modifiers []domain.Modifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modifiers = append([]domain.Modifier(nil), modifiers...)
}

// SetVideos replaces the video collection.
func (s *SignalStore) SetVideos(videos []domain.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = append([]domain.Video(nil), videos...)
}

// SetQuestions replaces the question collection.
func (s *SignalStore) SetQuestions(questions []domain.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append([]domain.Question(nil), questions...)
}

// SetChannels replaces the channel catalog.
func (s *SignalStore) SetChannels(channels *domain.ChannelCatalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels = channels
}

// Topics returns the seed topic catalog.
func (s *SignalStore) Topics(_ context.Context) ([]domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Topic(nil), s.topics...), nil
}

// Modifiers returns the modifier catalog.
func (s *SignalStore) Modifiers(_ context.Context) ([]domain.Modifier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Modifier(nil), s.modifiers...), nil
}

// Videos returns the video collection.
func (s *SignalStore) Videos(_ context.Context) ([]domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Video(nil), s.videos...), nil
}

// Questions returns the question collection.
func (s *SignalStore) Questions(_ context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Question(nil), s.questions...), nil
}

// Channels returns the channel catalog, empty when unset.
func (s *SignalStore) Channels(_ context.Context) (*domain.ChannelCatalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.channels == nil {
		return &domain.ChannelCatalog{Groups: map[string][]domain.ChannelProfile{}}, nil
	}
	return s.channels, nil
}
