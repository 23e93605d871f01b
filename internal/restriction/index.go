package restriction

import (
	"errors"
	"iter"

	id "credo-tcf/pkg/domain"
	dErrors "credo-tcf/pkg/domain-errors"
)

// ErrNilRestriction is wrapped by Add when called with a nil restriction.
var ErrNilRestriction = errors.New("nil publisher restriction")

// Index maps Purpose IDs to publisher restrictions. Each purpose has at most
// one restriction and no purpose maps to nil.
//
// Index does no locking. The owner must serialize access and must not mutate
// the index while iterating over it. The zero value is an empty index ready
// to use.
//
// Iteration order is unspecified and may differ between runs.
type Index struct {
	restrictions map[id.PurposeID]*PublisherRestriction
}

// IndexOption configures a new Index.
type IndexOption func(*indexOptions)

type indexOptions struct {
	capacity int
}

// WithCapacity pre-sizes the index for n entries. It is a hint only;
// negative values are treated as zero.
func WithCapacity(n int) IndexOption {
	return func(o *indexOptions) { o.capacity = max(n, 0) }
}

// NewIndex creates an empty index.
func NewIndex(opts ...IndexOption) *Index {
	var o indexOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &Index{restrictions: make(map[id.PurposeID]*PublisherRestriction, o.capacity)}
}

// Len returns the number of purposes with a restriction.
func (ix *Index) Len() int { return len(ix.restrictions) }

// Add sets the restriction for purposeID, replacing any existing one.
// A nil restriction is rejected with CodeInvalidInput and leaves the index
// unchanged.
func (ix *Index) Add(purposeID id.PurposeID, r *PublisherRestriction) error {
	if r == nil {
		return dErrors.Wrap(ErrNilRestriction, dErrors.CodeInvalidInput, "publisher restriction is required")
	}
	if ix.restrictions == nil {
		ix.restrictions = make(map[id.PurposeID]*PublisherRestriction)
	}
	ix.restrictions[purposeID] = r
	return nil
}

// Remove deletes the restriction for purposeID and reports whether one
// existed.
func (ix *Index) Remove(purposeID id.PurposeID) bool {
	_, ok := ix.Take(purposeID)
	return ok
}

// Take deletes the restriction for purposeID and returns it.
// It returns (nil, false) when the purpose has no restriction.
func (ix *Index) Take(purposeID id.PurposeID) (*PublisherRestriction, bool) {
	r, ok := ix.restrictions[purposeID]
	if !ok {
		return nil, false
	}
	delete(ix.restrictions, purposeID)
	return r, true
}

// Contains reports whether purposeID has a restriction.
func (ix *Index) Contains(purposeID id.PurposeID) bool {
	_, ok := ix.restrictions[purposeID]
	return ok
}

// Get returns the restriction for purposeID, or (nil, false).
func (ix *Index) Get(purposeID id.PurposeID) (*PublisherRestriction, bool) {
	r, ok := ix.restrictions[purposeID]
	return r, ok
}

// All yields every restriction in the index in unspecified order.
func (ix *Index) All() iter.Seq[*PublisherRestriction] {
	return func(yield func(*PublisherRestriction) bool) {
		for _, r := range ix.restrictions {
			if !yield(r) {
				return
			}
		}
	}
}

// Entries yields purpose/restriction pairs in unspecified order.
func (ix *Index) Entries() iter.Seq2[id.PurposeID, *PublisherRestriction] {
	return func(yield func(id.PurposeID, *PublisherRestriction) bool) {
		for p, r := range ix.restrictions {
			if !yield(p, r) {
				return
			}
		}
	}
}

// Values returns a snapshot of the restrictions. Unlike All, the result stays
// valid if the index is mutated afterwards.
func (ix *Index) Values() []*PublisherRestriction {
	out := make([]*PublisherRestriction, 0, len(ix.restrictions))
	for _, r := range ix.restrictions {
		out = append(out, r)
	}
	return out
}
