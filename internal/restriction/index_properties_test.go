package restriction

import (
	"testing"

	"pgregory.net/rapid"

	id "credo-tcf/pkg/domain"
)

// indexMachine drives an Index and a plain map through the same operations
// and checks that they never disagree.
type indexMachine struct {
	index *Index
	model map[id.PurposeID]*PublisherRestriction
}

func (m *indexMachine) purpose(t *rapid.T) id.PurposeID {
	// A narrow range keeps collisions frequent.
	return id.PurposeID(rapid.IntRange(0, 8).Draw(t, "purpose"))
}

func (m *indexMachine) Add(t *rapid.T) {
	p := m.purpose(t)
	r := &PublisherRestriction{
		Type:      RestrictionType(rapid.IntRange(0, 3).Draw(t, "type")),
		VendorIDs: rapid.SliceOfN(rapid.IntRange(1, 1000), 0, 4).Draw(t, "vendors"),
	}
	if err := m.index.Add(p, r); err != nil {
		t.Fatalf("Add(%d): %v", p, err)
	}
	m.model[p] = r
}

func (m *indexMachine) AddNil(t *rapid.T) {
	p := m.purpose(t)
	if err := m.index.Add(p, nil); err == nil {
		t.Fatalf("Add(%d, nil) succeeded", p)
	}
}

func (m *indexMachine) Remove(t *rapid.T) {
	p := m.purpose(t)
	_, want := m.model[p]
	if got := m.index.Remove(p); got != want {
		t.Fatalf("Remove(%d) = %v, want %v", p, got, want)
	}
	delete(m.model, p)
}

func (m *indexMachine) Take(t *rapid.T) {
	p := m.purpose(t)
	want, wantOK := m.model[p]
	got, ok := m.index.Take(p)
	if ok != wantOK || got != want {
		t.Fatalf("Take(%d) = (%p, %v), want (%p, %v)", p, got, ok, want, wantOK)
	}
	delete(m.model, p)
}

func (m *indexMachine) Get(t *rapid.T) {
	p := m.purpose(t)
	want, wantOK := m.model[p]
	got, ok := m.index.Get(p)
	if ok != wantOK || got != want {
		t.Fatalf("Get(%d) = (%p, %v), want (%p, %v)", p, got, ok, want, wantOK)
	}
	if m.index.Contains(p) != wantOK {
		t.Fatalf("Contains(%d) disagrees with Get", p)
	}
}

func (m *indexMachine) Check(t *rapid.T) {
	if m.index.Len() != len(m.model) {
		t.Fatalf("Len() = %d, want %d", m.index.Len(), len(m.model))
	}
	seen := 0
	for p, r := range m.index.Entries() {
		if r == nil {
			t.Fatalf("purpose %d maps to nil", p)
		}
		if m.model[p] != r {
			t.Fatalf("purpose %d holds an unexpected value", p)
		}
		seen++
	}
	if seen != len(m.model) {
		t.Fatalf("Entries yielded %d pairs, want %d", seen, len(m.model))
	}
}

// TestIndex_MatchesMapModel checks uniqueness, nil rejection, removal and
// lookup totality against a reference map for random operation sequences.
func TestIndex_MatchesMapModel(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		m := &indexMachine{
			index: NewIndex(),
			model: make(map[id.PurposeID]*PublisherRestriction),
		}
		rt.Repeat(rapid.StateMachineActions(m))
	})
}

// TestIndex_CapacityHintNeutral proves that two indexes built with and
// without a capacity hint behave identically for the same operations.
func TestIndex_CapacityHintNeutral(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		plain := NewIndex()
		sized := NewIndex(WithCapacity(rapid.IntRange(-5, 128).Draw(rt, "capacity")))

		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 50).Draw(rt, "ops")
		for i, op := range ops {
			p := id.PurposeID(rapid.IntRange(0, 5).Draw(rt, "purpose"))
			switch op {
			case 0:
				r := &PublisherRestriction{Type: RestrictionRequireConsent, VendorIDs: []int{i}}
				errPlain, errSized := plain.Add(p, r), sized.Add(p, r)
				if (errPlain == nil) != (errSized == nil) {
					rt.Fatalf("Add(%d) diverged: %v vs %v", p, errPlain, errSized)
				}
			case 1:
				if plain.Remove(p) != sized.Remove(p) {
					rt.Fatalf("Remove(%d) diverged", p)
				}
			case 2:
				a, okA := plain.Get(p)
				b, okB := sized.Get(p)
				if okA != okB || a != b {
					rt.Fatalf("Get(%d) diverged", p)
				}
			}
			if plain.Len() != sized.Len() {
				rt.Fatalf("Len diverged: %d vs %d", plain.Len(), sized.Len())
			}
		}
	})
}

// TestIndex_IterationCompleteness proves All yields each stored value once.
func TestIndex_IterationCompleteness(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		ix := NewIndex()
		purposes := rapid.SliceOfNDistinct(rapid.IntRange(0, id.MaxPurposeID), 0, 20, rapid.ID[int]).Draw(rt, "purposes")
		want := make(map[*PublisherRestriction]bool, len(purposes))
		for _, p := range purposes {
			r := &PublisherRestriction{Type: RestrictionNotAllowed, VendorIDs: []int{p}}
			if err := ix.Add(id.PurposeID(p), r); err != nil {
				rt.Fatalf("Add(%d): %v", p, err)
			}
			want[r] = true
		}

		got := make(map[*PublisherRestriction]bool)
		for r := range ix.All() {
			if got[r] {
				rt.Fatalf("value yielded twice")
			}
			got[r] = true
		}
		if len(got) != len(want) || ix.Len() != len(want) {
			rt.Fatalf("yielded %d values, Len %d, want %d", len(got), ix.Len(), len(want))
		}
		for r := range want {
			if !got[r] {
				rt.Fatalf("value for purpose %v missing from iteration", r.VendorIDs)
			}
		}
	})
}
