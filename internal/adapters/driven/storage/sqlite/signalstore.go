package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sehat-labs/gapscan/internal/core/domain"
	"github.com/sehat-labs/gapscan/internal/core/ports/driven"
)

// signalStore implements driven.SignalStore.
type signalStore struct {
	store *Store
}

var _ driven.SignalStore = (*signalStore)(nil)

// Topics returns the seed topic catalog.
func (s *signalStore) Topics(ctx context.Context) ([]domain.Topic, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, text, category, pillar, archetypes
		FROM topics ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.Topic //nolint:prealloc // size unknown from query
	for rows.Next() {
		var t domain.Topic
		var archetypesJSON string
		if err := rows.Scan(&t.ID, &t.Text, &t.Category, &t.Pillar, &archetypesJSON); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		if err := json.Unmarshal([]byte(archetypesJSON), &t.Archetypes); err != nil {
			return nil, fmt.Errorf("unmarshaling archetypes: %w", err)
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}

	return topics, nil
}

// Modifiers returns the modifier catalog.
func (s *signalStore) Modifiers(ctx context.Context) ([]domain.Modifier, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, text, type, compatible_pillars
		FROM modifiers ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying modifiers: %w", err)
	}
	defer rows.Close()

	var modifiers []domain.Modifier //nolint:prealloc // size unknown from query
	for rows.Next() {
		var m domain.Modifier
		var pillarsJSON string
		if err := rows.Scan(&m.ID, &m.Text, &m.Type, &pillarsJSON); err != nil {
			return nil, fmt.Errorf("scanning modifier: %w", err)
		}
		if err := json.Unmarshal([]byte(pillarsJSON), &m.CompatiblePillars); err != nil {
			return nil, fmt.Errorf("unmarshaling compatible pillars: %w", err)
		}
		modifiers = append(modifiers, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating modifiers: %w", err)
	}

	return modifiers, nil
}

// Videos returns the scraped video collection.
func (s *signalStore) Videos(ctx context.Context) ([]domain.Video, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT title, channel_name, channel_type, channel_language, views, url
		FROM videos ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video //nolint:prealloc // size unknown from query
	for rows.Next() {
		var v domain.Video
		var channelType string
		if err := rows.Scan(&v.Title, &v.ChannelName, &channelType, &v.ChannelLanguage, &v.Views, &v.URL); err != nil {
			return nil, fmt.Errorf("scanning video: %w", err)
		}
		v.ChannelType = domain.ChannelType(channelType)
		videos = append(videos, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating videos: %w", err)
	}

	return videos, nil
}

// Questions returns the scraped question collection.
func (s *signalStore) Questions(ctx context.Context) ([]domain.Question, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT text, likes FROM questions ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question //nolint:prealloc // size unknown from query
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.Text, &q.Likes); err != nil {
			return nil, fmt.Errorf("scanning question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}

	return questions, nil
}

// Channels returns the channel catalog reassembled from the profile,
// narrative-type and debunk-priority tables. An empty database yields
// an empty catalog, not an error.
func (s *signalStore) Channels(ctx context.Context) (*domain.ChannelCatalog, error) {
	catalog := &domain.ChannelCatalog{
		Groups: map[string][]domain.ChannelProfile{},
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT group_name, name, type, narrative_types, influence_rating, strategic_action, subscriber_estimate
		FROM channel_profiles ORDER BY group_name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying channel profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var group, channelType, narrativesJSON string
		var p domain.ChannelProfile
		if err := rows.Scan(&group, &p.Name, &channelType, &narrativesJSON,
			&p.InfluenceRating, &p.StrategicAction, &p.SubscriberEstimate); err != nil {
			return nil, fmt.Errorf("scanning channel profile: %w", err)
		}
		p.Type = domain.ChannelType(channelType)
		if err := json.Unmarshal([]byte(narrativesJSON), &p.NarrativeTypes); err != nil {
			return nil, fmt.Errorf("unmarshaling narrative types: %w", err)
		}
		catalog.Groups[group] = append(catalog.Groups[group], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating channel profiles: %w", err)
	}

	narrativeTypes, err := s.narrativeTypes(ctx)
	if err != nil {
		return nil, err
	}
	catalog.NarrativeTypes = narrativeTypes

	high, err := s.debunkTier(ctx, "high")
	if err != nil {
		return nil, err
	}
	catalog.DebunkPriority = domain.DebunkPriority{High: high}

	return catalog, nil
}

// narrativeTypes loads the narrative-type descriptions.
func (s *signalStore) narrativeTypes(ctx context.Context) (map[string]string, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT name, description FROM narrative_types")
	if err != nil {
		return nil, fmt.Errorf("querying narrative types: %w", err)
	}
	defer rows.Close()

	types := map[string]string{}
	for rows.Next() {
		var name, description string
		if err := rows.Scan(&name, &description); err != nil {
			return nil, fmt.Errorf("scanning narrative type: %w", err)
		}
		types[name] = description
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating narrative types: %w", err)
	}

	if len(types) == 0 {
		return nil, nil
	}
	return types, nil
}

// debunkTier loads the channel names in one debunk-priority tier.
func (s *signalStore) debunkTier(ctx context.Context, tier string) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT channel_name FROM debunk_priority WHERE tier = ? ORDER BY channel_name", tier)
	if err != nil {
		return nil, fmt.Errorf("querying debunk priority: %w", err)
	}
	defer rows.Close()

	var names []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning debunk priority: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debunk priority: %w", err)
	}

	return names, nil
}

// Importer replaces the stored signal collections with a fresh
// snapshot. Each Replace* call swaps one collection atomically.
type Importer struct {
	store *Store
}

// ReplaceTopics swaps the full topic catalog.
func (im *Importer) ReplaceTopics(ctx context.Context, topics []domain.Topic) error {
	return im.inTx(ctx, "topics", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO topics (id, text, category, pillar, archetypes)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("preparing statement: %w", err)
		}
		defer stmt.Close()

		for _, t := range topics {
			archetypesJSON, err := marshalList(t.Archetypes)
			if err != nil {
				return fmt.Errorf("marshalling archetypes: %w", err)
			}
			if _, err := stmt.ExecContext(ctx, t.ID, t.Text, t.Category, t.Pillar, archetypesJSON); err != nil {
				return fmt.Errorf("inserting topic %s: %w", t.ID, err)
			}
		}
		return nil
	})
}

// ReplaceModifiers swaps the full modifier catalog.
func (im *Importer) ReplaceModifiers(ctx context.Context, modifiers []domain.Modifier) error {
	return im.inTx(ctx, "modifiers", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO modifiers (id, text, type, compatible_pillars)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("preparing statement: %w", err)
		}
		defer stmt.Close()

		for _, m := range modifiers {
			pillarsJSON, err := marshalList(m.CompatiblePillars)
			if err != nil {
				return fmt.Errorf("marshalling compatible pillars: %w", err)
			}
			if _, err := stmt.ExecContext(ctx, m.ID, m.Text, m.Type, pillarsJSON); err != nil {
				return fmt.Errorf("inserting modifier %s: %w", m.ID, err)
			}
		}
		return nil
	})
}

// ReplaceVideos swaps the full video collection.
func (im *Importer) ReplaceVideos(ctx context.Context, videos []domain.Video) error {
	return im.inTx(ctx, "videos", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO videos (title, channel_name, channel_type, channel_language, views, url)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("preparing statement: %w", err)
		}
		defer stmt.Close()

		for _, v := range videos {
			if _, err := stmt.ExecContext(ctx, v.Title, v.ChannelName, string(v.ChannelType),
				v.ChannelLanguage, v.Views, v.URL); err != nil {
				return fmt.Errorf("inserting video: %w", err)
			}
		}
		return nil
	})
}

// ReplaceQuestions swaps the full question collection.
func (im *Importer) ReplaceQuestions(ctx context.Context, questions []domain.Question) error {
	return im.inTx(ctx, "questions", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO questions (text, likes) VALUES (?, ?)")
		if err != nil {
			return fmt.Errorf("preparing statement: %w", err)
		}
		defer stmt.Close()

		for _, q := range questions {
			if _, err := stmt.ExecContext(ctx, q.Text, q.Likes); err != nil {
				return fmt.Errorf("inserting question: %w", err)
			}
		}
		return nil
	})
}

// ReplaceChannels swaps the full channel catalog across its three
// tables in one transaction.
func (im *Importer) ReplaceChannels(ctx context.Context, catalog *domain.ChannelCatalog) error {
	if catalog == nil {
		catalog = &domain.ChannelCatalog{}
	}

	tx, err := im.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, table := range []string{"channel_profiles", "narrative_types", "debunk_priority"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO channel_profiles
			(group_name, name, type, narrative_types, influence_rating, strategic_action, subscriber_estimate)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for group, profiles := range catalog.Groups {
		for _, p := range profiles {
			narrativesJSON, err := marshalList(p.NarrativeTypes)
			if err != nil {
				return fmt.Errorf("marshalling narrative types: %w", err)
			}
			if _, err := stmt.ExecContext(ctx, group, p.Name, string(p.Type), narrativesJSON,
				p.InfluenceRating, p.StrategicAction, p.SubscriberEstimate); err != nil {
				return fmt.Errorf("inserting channel profile %s: %w", p.Name, err)
			}
		}
	}

	for name, description := range catalog.NarrativeTypes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO narrative_types (name, description) VALUES (?, ?)", name, description); err != nil {
			return fmt.Errorf("inserting narrative type %s: %w", name, err)
		}
	}

	for _, name := range catalog.DebunkPriority.High {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO debunk_priority (tier, channel_name) VALUES ('high', ?)", name); err != nil {
			return fmt.Errorf("inserting debunk priority %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// inTx clears one table and runs the insert body in a transaction.
func (im *Importer) inTx(ctx context.Context, table string, body func(tx *sql.Tx) error) error {
	tx, err := im.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}

	if err := body(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// marshalList encodes a string slice as JSON, writing [] for nil so
// columns never hold SQL NULL.
func marshalList(list []string) (string, error) {
	if list == nil {
		return "[]", nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
