// Package render turns fetched CMS sections into view models and renders the
// landing page. Sections that failed to load, or that lack the assets they
// need, fall back to built-in placeholder content.
package render

import "github.com/landingpro/landing/backend/go-services/internal/content"

type Kind int

const (
	KindLoaded Kind = iota
	KindEmpty
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindLoaded:
		return "loaded"
	case KindEmpty:
		return "empty"
	case KindError:
		return "error"
	}
	return "unknown"
}

// State is the outcome of fetching one section.
type State[T any] struct {
	Kind   Kind
	Entry  *T
	Reason string
}

func Loaded[T any](e *T) State[T] { return State[T]{Kind: KindLoaded, Entry: e} }

func Empty[T any]() State[T] { return State[T]{Kind: KindEmpty} }

func Failed[T any](reason string) State[T] { return State[T]{Kind: KindError, Reason: reason} }

// OK reports whether the state holds an entry.
func (s State[T]) OK() bool { return s.Kind == KindLoaded && s.Entry != nil }

// FromResult classifies a fetch result.
func FromResult[T any](r content.Result[*T]) State[T] {
	switch {
	case !r.Success:
		return Failed[T](r.Error)
	case r.Data == nil:
		return Empty[T]()
	}
	return Loaded(r.Data)
}
