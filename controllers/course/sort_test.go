package controllers

import (
	"testing"

	"worldone/supabase"

	"github.com/stretchr/testify/assert"
)

func ids(rows []supabase.Record) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Str("id"))
	}
	return out
}

func TestSortByOrderThenCreated(t *testing.T) {
	rows := []supabase.Record{
		{"id": "c", "order": float64(2), "created_at": "2025-01-01"},
		{"id": "a", "order": float64(1), "created_at": "2025-01-02"},
		{"id": "b", "order": float64(1), "created_at": "2025-01-01"},
	}

	sortByOrderThenCreated(rows)
	assert.Equal(t, []string{"b", "a", "c"}, ids(rows))
}

func TestSortIsStableOnFullCollision(t *testing.T) {
	rows := []supabase.Record{
		{"id": "first", "order": float64(1), "created_at": "2025-01-01"},
		{"id": "second", "order": float64(1), "created_at": "2025-01-01"},
		{"id": "third", "order": float64(1), "created_at": "2025-01-01"},
	}

	sortByOrderThenCreated(rows)
	assert.Equal(t, []string{"first", "second", "third"}, ids(rows))
}

func TestSortHandlesMissingOrder(t *testing.T) {
	rows := []supabase.Record{
		{"id": "b", "order": float64(1), "created_at": "2025-01-01"},
		{"id": "a", "created_at": "2025-01-01"}, // missing order sorts as 0
	}

	sortByOrderThenCreated(rows)
	assert.Equal(t, []string{"a", "b"}, ids(rows))
}
