package fetchstate

import (
	"strings"
)

// Status is the lifecycle position of one collection fetch.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// FallbackErrorMessage is shown when a failure carries no description.
const FallbackErrorMessage = "An unknown error occurred"

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the fetch half of a page's state.
//
// Data is non-nil exactly when Status is StatusSuccess; ErrorMessage is
// non-empty exactly when Status is StatusError.
type State[T any] struct {
	Status       Status `json:"status"                  yaml:"status"`
	Data         []T    `json:"data,omitempty"          yaml:"data,omitempty"`
	ErrorMessage string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	Err          error  `json:"-"                       yaml:"-"`
	RequestID    uint64 `json:"request_id"              yaml:"request_id"`
}

// Filter is the search half of a page's state. Visible is always an
// order-preserving subsequence of the fetched data.
type Filter[T any] struct {
	SearchTerm string `json:"search_term" yaml:"search_term"`
	Visible    []T    `json:"visible"     yaml:"visible"`
}

// Snapshot is a consistent copy of a controller's state.
type Snapshot[T any] struct {
	State  State[T]  `json:"state"  yaml:"state"`
	Filter Filter[T] `json:"filter" yaml:"filter"`
}

// Loading reports whether a fetch is in flight.
func (s Snapshot[T]) Loading() bool {
	return s.State.Status == StatusLoading
}

// Failed reports whether the last fetch failed.
func (s Snapshot[T]) Failed() bool {
	return s.State.Status == StatusError
}

// ErrorMessage turns any fetch failure into display text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return FallbackErrorMessage
	}

	return msg
}

// Matcher returns the text fields of an item a search term is matched against.
type Matcher[T any] func(item T) []string

// Apply returns the items of data in which term occurs, ignoring case, in
// at least one field reported by match. An empty term returns data as is;
// a nil match matches nothing.
func Apply[T any](data []T, term string, match Matcher[T]) []T {
	if term == "" {
		return data
	}

	if match == nil {
		return []T{}
	}

	needle := strings.ToLower(term)
	visible := make([]T, 0, len(data))

	for _, item := range data {
		for _, field := range match(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				visible = append(visible, item)

				break
			}
		}
	}

	return visible
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}

	out := make([]T, len(in))
	copy(out, in)

	return out
}
