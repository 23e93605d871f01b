package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"credo-tcf/internal/restriction"
	"credo-tcf/internal/restriction/metrics"
	id "credo-tcf/pkg/domain"
	dErrors "credo-tcf/pkg/domain-errors"
	"credo-tcf/pkg/requestcontext"
)

// Service owns a restriction index and serializes access to it.
type Service struct {
	mu       sync.RWMutex
	index    *restriction.Index
	capacity int
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCapacity sizes the initial index. It does not change behaviour.
func WithCapacity(n int) Option {
	return func(s *Service) {
		s.capacity = n
	}
}

// New constructs a Service with an empty index.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.index = restriction.NewIndex(restriction.WithCapacity(s.capacity))
	return s
}

// Load replaces the whole index with entries. Later entries for the same
// purpose overwrite earlier ones; each overwrite is logged and counted once
// the new index is in place. On error the previous index stays in place and
// nothing is recorded as overwritten.
func (s *Service) Load(ctx context.Context, entries []restriction.Entry) (int, error) {
	next := restriction.NewIndex(restriction.WithCapacity(len(entries)))
	var overwritten []int
	for i, e := range entries {
		replaced := next.Contains(e.PurposeID)
		if err := next.Add(e.PurposeID, e.Restriction); err != nil {
			s.metrics.IncrementMutation("load", "rejected")
			return 0, dErrors.Wrap(err, dErrors.CodeValidation, "invalid restriction for purpose "+e.PurposeID.String())
		}
		if replaced {
			overwritten = append(overwritten, i)
		}
	}

	s.mu.Lock()
	s.index = next
	n := s.index.Len()
	s.metrics.SetActive(n)
	s.mu.Unlock()

	for _, i := range overwritten {
		s.logger.WarnContext(ctx, "duplicate restriction overwritten",
			"purpose_id", entries[i].PurposeID,
			"position", i,
		)
		s.metrics.IncrementOverwrite("load")
	}
	s.metrics.IncrementMutation("load", "ok")
	s.logger.InfoContext(ctx, "restrictions loaded",
		"request_id", requestcontext.RequestID(ctx),
		"declared", len(entries),
		"active", n,
	)
	return n, nil
}

// Get returns the restriction for purposeID.
//
// Errors: CodeNotFound when the purpose has no restriction.
func (s *Service) Get(_ context.Context, purposeID id.PurposeID) (*restriction.PublisherRestriction, error) {
	s.mu.RLock()
	r, ok := s.index.Get(purposeID)
	s.mu.RUnlock()
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "no restriction for purpose "+purposeID.String())
	}
	return r.Clone(), nil
}

// List returns a snapshot of all restrictions ordered by purpose.
func (s *Service) List(_ context.Context) []restriction.Entry {
	s.mu.RLock()
	entries := make([]restriction.Entry, 0, s.index.Len())
	for p, r := range s.index.Entries() {
		entries = append(entries, restriction.Entry{PurposeID: p, Restriction: r.Clone()})
	}
	s.mu.RUnlock()

	slices.SortFunc(entries, func(a, b restriction.Entry) int {
		return cmp.Compare(a.PurposeID, b.PurposeID)
	})
	return entries
}

// Count returns the number of purposes with a restriction.
func (s *Service) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Len()
}

// Put sets the restriction for purposeID and reports whether it replaced an
// existing one.
func (s *Service) Put(ctx context.Context, purposeID id.PurposeID, r *restriction.PublisherRestriction) (bool, error) {
	s.mu.Lock()
	replaced := s.index.Contains(purposeID)
	err := s.index.Add(purposeID, r.Clone())
	if err == nil {
		s.metrics.SetActive(s.index.Len())
	}
	s.mu.Unlock()

	if err != nil {
		s.metrics.IncrementMutation("put", "rejected")
		return false, dErrors.Wrap(err, dErrors.CodeValidation, "invalid restriction for purpose "+purposeID.String())
	}
	if replaced {
		s.metrics.IncrementOverwrite("put")
	}
	s.metrics.IncrementMutation("put", "ok")
	s.logger.InfoContext(ctx, "restriction stored",
		"request_id", requestcontext.RequestID(ctx),
		"purpose_id", purposeID,
		"type", r.Type.String(),
		"replaced", replaced,
	)
	return replaced, nil
}

// Delete removes and returns the restriction for purposeID.
//
// Errors: CodeNotFound when the purpose has no restriction.
func (s *Service) Delete(ctx context.Context, purposeID id.PurposeID) (*restriction.PublisherRestriction, error) {
	s.mu.Lock()
	r, ok := s.index.Take(purposeID)
	if ok {
		s.metrics.SetActive(s.index.Len())
	}
	s.mu.Unlock()

	if !ok {
		s.metrics.IncrementMutation("delete", "not_found")
		return nil, dErrors.New(dErrors.CodeNotFound, "no restriction for purpose "+purposeID.String())
	}
	s.metrics.IncrementMutation("delete", "ok")
	s.logger.InfoContext(ctx, "restriction removed",
		"request_id", requestcontext.RequestID(ctx),
		"purpose_id", purposeID,
	)
	return r, nil
}
