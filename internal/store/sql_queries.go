package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionValuesTable = "session_values"

// Storage keys of the session table.
const (
	accessTokenKey  = "accessToken"
	refreshTokenKey = "refreshToken"
	userKey         = "hospital_ai_auth"
)

// buildSelectValuesQuery selects key/value rows for the given keys.
func buildSelectValuesQuery(keys ...string) (string, []any, error) {
	return sq.Select("key", "value").
		From(sessionValuesTable).
		Where(sq.Eq{"key": keys}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildUpsertValuesQuery inserts or replaces the given key/value pairs in a
// single statement. Keys are written in the order given.
func buildUpsertValuesQuery(now time.Time, pairs ...[2]string) (string, []any, error) {
	insert := sq.Insert(sessionValuesTable).
		Columns("key", "value", "updated_at")

	for _, pair := range pairs {
		insert = insert.Values(pair[0], pair[1], now)
	}

	return insert.
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildDeleteValuesQuery deletes the rows of the given keys.
func buildDeleteValuesQuery(keys ...string) (string, []any, error) {
	return sq.Delete(sessionValuesTable).
		Where(sq.Eq{"key": keys}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
