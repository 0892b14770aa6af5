package controllers

import (
	"sort"

	"worldone/supabase"
)

// sortByOrderThenCreated sorts rows by their explicit order field ascending,
// breaking ties by creation timestamp. The sort is stable so rows that
// collide on both keys keep their fetched order.
func sortByOrderThenCreated(rows []supabase.Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		oi, oj := rows[i].Int("order"), rows[j].Int("order")
		if oi != oj {
			return oi < oj
		}
		return rows[i].Str("created_at") < rows[j].Str("created_at")
	})
}
