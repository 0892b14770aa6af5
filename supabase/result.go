package supabase

import "encoding/json"

// Record is one row from the data store, decoded as a generic JSON object.
type Record map[string]interface{}

// Result is the uniform shape every Execute returns: Rows is always
// non-nil, empty on 204 or when nothing matched. No attribute probing.
type Result struct {
	Rows []Record
}

// First returns the first row, or nil when the result is empty.
func (r *Result) First() Record {
	if len(r.Rows) == 0 {
		return nil
	}
	return r.Rows[0]
}

// Decode remarshals the rows into a typed destination (slice of structs).
func (r *Result) Decode(dest interface{}) error {
	raw, err := json.Marshal(r.Rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Str returns the value at key as a string, or "" when absent or not a string.
func (rec Record) Str(key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the value at key as a float64, or 0 when absent.
func (rec Record) Float(key string) float64 {
	if v, ok := rec[key].(float64); ok {
		return v
	}
	return 0
}

// Int returns the value at key as an int, truncating the JSON number.
func (rec Record) Int(key string) int {
	return int(rec.Float(key))
}

// Bool returns the value at key as a bool, or false when absent.
func (rec Record) Bool(key string) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return false
}
