package supabase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const singleObjectAccept = "application/vnd.pgrst.object+json"

// QueryBuilder accumulates filters, ordering and mutation state for one
// table and performs exactly one HTTP request when Execute is called.
// Builders are single-use: build a fresh one per request via Client.Table.
type QueryBuilder struct {
	client  *Client
	table   string
	headers map[string]string
	params  map[string]string
	orders  []string
	method  string
	body    interface{}
	single  bool
}

// Select sets the columns to return. Filter state is a plain key/value map,
// so the order of Select/Eq/In calls does not change the resulting query.
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.method = http.MethodGet
	q.params["select"] = columns
	return q
}

// Eq adds an equality filter: column=eq.value.
func (q *QueryBuilder) Eq(column string, value interface{}) *QueryBuilder {
	q.params[column] = fmt.Sprintf("eq.%v", value)
	return q
}

// In adds a membership filter: column=in.(v1,v2,...). Used for bulk fetches
// that would otherwise fan out into one request per parent row.
func (q *QueryBuilder) In(column string, values []string) *QueryBuilder {
	q.params[column] = fmt.Sprintf("in.(%s)", strings.Join(values, ","))
	return q
}

// Order appends an ordering term. Unlike filters, multiple Order calls
// concatenate in call order; PostgREST sorts by the composite key.
func (q *QueryBuilder) Order(column string, desc bool) *QueryBuilder {
	direction := "asc"
	if desc {
		direction = "desc"
	}
	q.orders = append(q.orders, column+"."+direction)
	return q
}

// Single asks PostgREST for exactly one row as a bare object. Absence of a
// row surfaces as ErrNoRows from Execute. Only this builder's header copy
// is touched.
func (q *QueryBuilder) Single() *QueryBuilder {
	q.headers["Accept"] = singleObjectAccept
	q.single = true
	return q
}

// Insert stages a POST with the given body. Nothing is sent until Execute.
func (q *QueryBuilder) Insert(data interface{}) *QueryBuilder {
	q.method = http.MethodPost
	q.body = data
	return q
}

// Update stages a PATCH with the given body, applied to rows matching the
// accumulated filters.
func (q *QueryBuilder) Update(data interface{}) *QueryBuilder {
	q.method = http.MethodPatch
	q.body = data
	return q
}

// Delete stages a DELETE for rows matching the accumulated filters.
func (q *QueryBuilder) Delete() *QueryBuilder {
	q.method = http.MethodDelete
	return q
}

// queryParams assembles the final query-parameter set, joining Order terms
// into a single comma-separated order parameter.
func (q *QueryBuilder) queryParams() map[string]string {
	params := make(map[string]string, len(q.params)+1)
	for k, v := range q.params {
		params[k] = v
	}
	if len(q.orders) > 0 {
		params["order"] = strings.Join(q.orders, ",")
	}
	return params
}

// Execute performs the single HTTP request for this builder and maps the
// response into a Result. 204 is an empty success; 4xx/5xx become an
// *APIError carrying the body; transport failures become a *ConnError; a
// missing row in single mode becomes ErrNoRows.
func (q *QueryBuilder) Execute() (*Result, error) {
	req := q.client.rest.R().
		SetHeaders(q.headers).
		SetQueryParams(q.queryParams())
	if q.body != nil {
		req.SetBody(q.body)
	}

	url := q.client.BaseURL + "/rest/v1/" + q.table
	resp, err := req.Execute(q.method, url)
	if err != nil {
		return nil, &ConnError{Op: q.method + " " + q.table, Err: err}
	}

	if resp.StatusCode() == http.StatusNoContent {
		return &Result{Rows: []Record{}}, nil
	}

	if resp.StatusCode() >= 400 {
		apiErr := newAPIError(resp.StatusCode(), resp.Body())
		if q.single && (apiErr.Code == pgrstNoRows || resp.StatusCode() == http.StatusNotAcceptable) {
			return nil, ErrNoRows
		}
		return nil, apiErr
	}

	return parseResult(resp.Body(), q.single)
}

// parseResult normalizes the response body into rows. Single mode yields a
// bare object; everything else is an array (possibly empty).
func parseResult(body []byte, single bool) (*Result, error) {
	result := &Result{Rows: []Record{}}
	if len(body) == 0 {
		return result, nil
	}

	if single {
		var row Record
		if err := json.Unmarshal(body, &row); err != nil {
			return nil, fmt.Errorf("decode single row: %w", err)
		}
		result.Rows = append(result.Rows, row)
		return result, nil
	}

	if err := json.Unmarshal(body, &result.Rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return result, nil
}
