// Package listview turns an ordered item sequence into one of three
// mutually exclusive views: loading, empty or populated.
//
// Build is pure. It never performs I/O and holds no state; renderers for a
// concrete output (terminal table, HTML) consume the View it returns.
package listview

import (
	"fmt"
	"strconv"
)

// State identifies which of the three views was produced.
type State int

const (
	StateLoading State = iota
	StateEmpty
	StatePopulated
)

// Default messages.
const (
	DefaultEmptyMessage   = "No items to display"
	DefaultLoadingMessage = "Loading..."
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// Props is the input of Build. R is the renderable produced per item, e.g.
// []string for a table row or template.HTML for a page.
type Props[T, R any] struct {
	Items []T
	// RenderItem is required whenever Items may be non-empty.
	RenderItem func(item T, index int) R
	// KeyExtractor tags each row. Keys must be unique; duplicates are not
	// detected. When nil the index is used.
	KeyExtractor   func(item T, index int) string
	IsLoading      bool
	EmptyMessage   string
	LoadingMessage string
}

// Row is one rendered item.
type Row[R any] struct {
	Key     string
	Index   int
	Content R
}

// View is the output of Build.
type View[R any] struct {
	State   State
	Message string
	Rows    []Row[R]
	// Announcement is a plain-text summary of the view for screen readers
	// and status lines.
	Announcement string
}

// Build selects and renders the view for props.
func Build[T, R any](props Props[T, R]) View[R] {
	if props.IsLoading {
		msg := props.LoadingMessage
		if msg == "" {
			msg = DefaultLoadingMessage
		}

		return View[R]{State: StateLoading, Message: msg, Announcement: msg}
	}

	if len(props.Items) == 0 {
		msg := props.EmptyMessage
		if msg == "" {
			msg = DefaultEmptyMessage
		}

		return View[R]{State: StateEmpty, Message: msg, Announcement: msg}
	}

	keyOf := props.KeyExtractor
	if keyOf == nil {
		keyOf = func(_ T, index int) string { return strconv.Itoa(index) }
	}

	rows := make([]Row[R], 0, len(props.Items))
	for index, item := range props.Items {
		rows = append(rows, Row[R]{
			Key:     keyOf(item, index),
			Index:   index,
			Content: props.RenderItem(item, index),
		})
	}

	return View[R]{
		State:        StatePopulated,
		Rows:         rows,
		Announcement: Announce(len(rows)),
	}
}

// Announce returns "Displaying N item(s)".
func Announce(count int) string {
	if count == 1 {
		return "Displaying 1 item"
	}

	return fmt.Sprintf("Displaying %d items", count)
}

// Contents returns the rendered content of every row, in order.
func (v View[R]) Contents() []R {
	out := make([]R, 0, len(v.Rows))
	for _, row := range v.Rows {
		out = append(out, row.Content)
	}

	return out
}
