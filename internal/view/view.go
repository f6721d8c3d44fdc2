// Package view holds the client side of the report pages: form state for one
// dimension, a single fetch per submit and the projection shown to the user.
package view

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type Status int

const (
	Idle Status = iota
	Loading
)

func (s Status) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

// ChartProjection holds parallel label and value sequences.
type ChartProjection struct {
	Labels []string
	Values []float64
}

// Len reports the number of points in the projection.
func (p ChartProjection) Len() int {
	return len(p.Labels)
}

// State is what a view renders: its status, the user-facing message and the
// projected data.
type State[P any] struct {
	Status  Status
	Message string
	Data    P
}

// messages are the user-facing texts of one view.
type messages struct {
	loading string
	failed  string
}

// view carries the submit cycle shared by every report view. A submit
// replaces the whole state, so snapshots never share mutable data with a
// later submit.
type view[P any] struct {
	baseURL string
	fetcher Fetcher
	log     *zap.Logger
	text    messages

	mu    sync.Mutex
	state State[P]
}

func (v *view[P]) init(baseURL string, fetcher Fetcher, log *zap.Logger, name string, text messages) {
	if log == nil {
		log = zap.NewNop()
	}
	v.baseURL = strings.TrimRight(baseURL, "/")
	v.fetcher = fetcher
	v.log = log.Named(name)
	v.text = text
}

// Snapshot returns the current state.
func (v *view[P]) Snapshot() State[P] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *view[P]) set(status Status, message string, data P) {
	v.mu.Lock()
	v.state = State[P]{Status: status, Message: message, Data: data}
	v.mu.Unlock()
}

// reject clears the view and shows a validation message without a request.
func (v *view[P]) reject(message string) {
	var zero P
	v.set(Idle, message, zero)
}

// submit fetches path once and projects the rows. project reports false
// when nothing displayable remains, which shows noData.
func (v *view[P]) submit(ctx context.Context, path, noData string, project func(rows []any) (P, bool)) {
	var zero P
	v.set(Loading, v.text.loading, zero)

	url := v.baseURL + path
	rows, err := v.fetchRows(ctx, url)
	if err != nil {
		v.log.Error("report request failed", zap.String("url", url), zap.Error(err))
		v.set(Idle, v.text.failed, zero)
		return
	}
	if len(rows) == 0 {
		v.set(Idle, noData, zero)
		return
	}

	data, ok := project(rows)
	if !ok {
		v.set(Idle, noData, zero)
		return
	}
	v.set(Idle, "", data)
}

// fetchRows returns the decoded array, or nil when the body is any other
// JSON value.
func (v *view[P]) fetchRows(ctx context.Context, url string) ([]any, error) {
	body, err := v.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	rows, _ := decoded.([]any)
	return rows, nil
}

func field(row any, name string) any {
	m, ok := row.(map[string]any)
	if !ok {
		return nil
	}
	return m[name]
}

// toNumber coerces a JSON number or numeric string. A blank string is 0.
// Anything else is NaN.
func toNumber(value any) float64 {
	switch n := value.(type) {
	case float64:
		return n
	case string:
		n = strings.TrimSpace(n)
		if n == "" {
			return 0
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func toText(value any) string {
	switch s := value.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
