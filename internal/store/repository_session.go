// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/models"
)

type sessionRepository struct {
	db  *DB
	now func() time.Time
}

// NewSessionRepository returns a [SessionRepository] backed by db.
func NewSessionRepository(db *DB) SessionRepository {
	return &sessionRepository{db: db, now: time.Now}
}

func (s *sessionRepository) LoadTokens(ctx context.Context) (models.Session, error) {
	values, err := s.loadValues(ctx, "sessionRepository.LoadTokens", accessTokenKey, refreshTokenKey)
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{
		AccessToken:  values[accessTokenKey],
		RefreshToken: values[refreshTokenKey],
	}
	if session.IsEmpty() {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *sessionRepository) SaveTokens(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertValuesQuery(s.now().UTC(),
		[2]string{accessTokenKey, session.AccessToken},
		[2]string{refreshTokenKey, session.RefreshToken},
	)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveTokens").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveTokens").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveTokens").Msg("failed to upsert tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "sessionRepository.SaveTokens").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", "sessionRepository.SaveTokens").Msg("session tokens saved")
	return nil
}

func (s *sessionRepository) ClearTokens(ctx context.Context) error {
	return s.deleteValues(ctx, "sessionRepository.ClearTokens", accessTokenKey, refreshTokenKey)
}

func (s *sessionRepository) LoadUser(ctx context.Context) (models.User, error) {
	values, err := s.loadValues(ctx, "sessionRepository.LoadUser", userKey)
	if err != nil {
		return models.User{}, err
	}

	raw, ok := values[userKey]
	if !ok || raw == "" {
		return models.User{}, ErrSessionNotFound
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.LoadUser").Msg("failed to decode stored user")
		return models.User{}, fmt.Errorf("%w: %w", ErrCorruptedUser, err)
	}

	return user, nil
}

func (s *sessionRepository) SaveUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	query, args, err := buildUpsertValuesQuery(s.now().UTC(), [2]string{userKey, string(payload)})
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveUser").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveUser").Int64("user_id", user.ID).Msg("failed to upsert user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) ClearUser(ctx context.Context) error {
	return s.deleteValues(ctx, "sessionRepository.ClearUser", userKey)
}

func (s *sessionRepository) loadValues(ctx context.Context, fn string, keys ...string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectValuesQuery(keys...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query session values")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var key string
		var value sql.NullString
		if err = rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value.String
	}
	if err = rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", fn).Msg("failed to iterate session rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

func (s *sessionRepository) deleteValues(ctx context.Context, fn string, keys ...string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValuesQuery(keys...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to delete session values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
