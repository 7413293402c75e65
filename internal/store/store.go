// Package store is the in-memory system of record for corridors and
// remittances. One RWMutex spans both collections, so cross-entity checks
// (corridor references, delete guards) stay race-free and every mutation is
// atomic: all errors are detected before the first write.
package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/remesahq/remesa/internal/apperror"
	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/remittance"
)

type Store struct {
	mu sync.RWMutex

	corridors   map[int]*corridor.Corridor
	remittances map[int]*remittance.Remittance

	// Monotonic counters. IDs of deleted records are never reused, and
	// failed validations never consume one.
	nextCorridorID   int
	nextRemittanceID int
}

var (
	_ corridor.Repository   = (*Store)(nil)
	_ remittance.Repository = (*Store)(nil)
)

func New() *Store {
	return &Store{
		corridors:        map[int]*corridor.Corridor{},
		remittances:      map[int]*remittance.Remittance{},
		nextCorridorID:   1,
		nextRemittanceID: 1,
	}
}

func (s *Store) CreateCorridor(_ context.Context, params corridor.CreateParams) (*corridor.Corridor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.codeTaken(params.Code, 0) {
		return nil, apperror.Conflictf("a corridor with code '%s' already exists", params.Code)
	}

	c := &corridor.Corridor{
		ID:                 s.nextCorridorID,
		Name:               params.Name,
		Code:               params.Code,
		OriginCountry:      params.OriginCountry,
		DestinationCountry: params.DestinationCountry,
		BaseFeePercentage:  params.BaseFeePercentage,
		IsActive:           params.IsActive,
		CreatedAt:          time.Now().UTC(),
	}
	s.nextCorridorID++
	s.corridors[c.ID] = c

	return cloneCorridor(c), nil
}

func (s *Store) GetCorridor(_ context.Context, id int) (*corridor.Corridor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.corridors[id]
	if !ok {
		return nil, apperror.NotFoundf("corridor with id %d not found", id)
	}

	return cloneCorridor(c), nil
}

func (s *Store) ListCorridors(_ context.Context, filter corridor.ListFilter) ([]*corridor.Corridor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*corridor.Corridor, 0, len(s.corridors))

	for _, c := range s.corridors {
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}

		out = append(out, cloneCorridor(c))
	}

	slices.SortFunc(out, func(a, b *corridor.Corridor) int { return cmp.Compare(a.ID, b.ID) })

	return out, nil
}

func (s *Store) ReplaceCorridor(_ context.Context, id int, params corridor.CreateParams) (*corridor.Corridor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.corridors[id]
	if !ok {
		return nil, apperror.NotFoundf("corridor with id %d not found", id)
	}

	if s.codeTaken(params.Code, id) {
		return nil, apperror.Conflictf("a corridor with code '%s' already exists", params.Code)
	}

	c := &corridor.Corridor{
		ID:                 id,
		Name:               params.Name,
		Code:               params.Code,
		OriginCountry:      params.OriginCountry,
		DestinationCountry: params.DestinationCountry,
		BaseFeePercentage:  params.BaseFeePercentage,
		IsActive:           params.IsActive,
		CreatedAt:          existing.CreatedAt,
	}
	s.corridors[id] = c

	return cloneCorridor(c), nil
}

func (s *Store) UpdateCorridor(_ context.Context, id int, params corridor.UpdateParams) (*corridor.Corridor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.corridors[id]
	if !ok {
		return nil, apperror.NotFoundf("corridor with id %d not found", id)
	}

	if params.Code != nil && s.codeTaken(*params.Code, id) {
		return nil, apperror.Conflictf("a corridor with code '%s' already exists", *params.Code)
	}

	c := *existing
	if params.Name != nil {
		c.Name = *params.Name
	}

	if params.Code != nil {
		c.Code = *params.Code
	}

	if params.OriginCountry != nil {
		c.OriginCountry = *params.OriginCountry
	}

	if params.DestinationCountry != nil {
		c.DestinationCountry = *params.DestinationCountry
	}

	if params.BaseFeePercentage != nil {
		c.BaseFeePercentage = *params.BaseFeePercentage
	}

	if params.IsActive != nil {
		c.IsActive = *params.IsActive
	}

	s.corridors[id] = &c

	return cloneCorridor(&c), nil
}

// DeleteCorridor refuses to orphan remittances. Deactivation is the way to
// retire a corridor that has history.
func (s *Store) DeleteCorridor(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.corridors[id]; !ok {
		return apperror.NotFoundf("corridor with id %d not found", id)
	}

	for _, r := range s.remittances {
		if r.CorridorID == id {
			return apperror.Conflictf("cannot delete a corridor with associated remittances")
		}
	}

	delete(s.corridors, id)

	return nil
}

func (s *Store) codeTaken(code string, excludeID int) bool {
	for _, c := range s.corridors {
		if c.Code == code && c.ID != excludeID {
			return true
		}
	}

	return false
}

func (s *Store) CreateRemittance(_ context.Context, params remittance.CreateParams) (*remittance.Remittance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.requireActiveCorridor(params.CorridorID)
	if err != nil {
		return nil, err
	}

	r := s.buildRemittance(params, c)
	s.remittances[r.ID] = r

	return cloneRemittance(r, c), nil
}

// CreateRemittances inserts the whole batch or nothing: every corridor
// reference is checked before the first insert.
func (s *Store) CreateRemittances(_ context.Context, params []remittance.CreateParams) ([]*remittance.Remittance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := make([]*corridor.Corridor, len(params))

	for i, p := range params {
		c, err := s.requireActiveCorridor(p.CorridorID)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		cs[i] = c
	}

	out := make([]*remittance.Remittance, len(params))

	for i, p := range params {
		r := s.buildRemittance(p, cs[i])
		s.remittances[r.ID] = r
		out[i] = cloneRemittance(r, cs[i])
	}

	return out, nil
}

func (s *Store) GetRemittance(_ context.Context, id int) (*remittance.Remittance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.remittances[id]
	if !ok {
		return nil, apperror.NotFoundf("remittance with id %d not found", id)
	}

	return cloneRemittance(r, s.corridors[r.CorridorID]), nil
}

// ListRemittances returns enriched clones in ascending ID order, which is
// creation order since IDs are monotonic.
func (s *Store) ListRemittances(_ context.Context) ([]*remittance.Remittance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*remittance.Remittance, 0, len(s.remittances))

	for _, r := range s.remittances {
		out = append(out, cloneRemittance(r, s.corridors[r.CorridorID]))
	}

	slices.SortFunc(out, func(a, b *remittance.Remittance) int { return cmp.Compare(a.ID, b.ID) })

	return out, nil
}

func (s *Store) ReplaceRemittance(_ context.Context, id int, params remittance.CreateParams) (*remittance.Remittance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.remittances[id]
	if !ok {
		return nil, apperror.NotFoundf("remittance with id %d not found", id)
	}

	c, err := s.requireActiveCorridor(params.CorridorID)
	if err != nil {
		return nil, err
	}

	// Identity survives a full replace: the reference code, status and
	// creation time stay as they were.
	r := &remittance.Remittance{
		ID:            id,
		ReferenceCode: existing.ReferenceCode,
		SenderName:    params.SenderName,
		RecipientName: params.RecipientName,
		CorridorID:    params.CorridorID,
		Amount:        params.Amount,
		Currency:      params.Currency,
		ExchangeRate:  params.ExchangeRate,
		Fee:           remittance.ComputeFee(params.Amount, c.BaseFeePercentage, params.IsExpress),
		PaymentMethod: params.PaymentMethod,
		Status:        existing.Status,
		IsExpress:     params.IsExpress,
		CreatedAt:     existing.CreatedAt,
	}
	s.remittances[id] = r

	return cloneRemittance(r, c), nil
}

func (s *Store) UpdateRemittance(_ context.Context, id int, params remittance.UpdateParams) (*remittance.Remittance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.remittances[id]
	if !ok {
		return nil, apperror.NotFoundf("remittance with id %d not found", id)
	}

	// A corridor named in the patch is revalidated even when the value is
	// unchanged.
	if params.CorridorID != nil {
		if _, err := s.requireActiveCorridor(*params.CorridorID); err != nil {
			return nil, err
		}
	}

	if params.Status != nil && !existing.Status.CanTransitionTo(*params.Status) {
		return nil, apperror.Conflictf("cannot transition remittance from '%s' to '%s'", existing.Status, *params.Status)
	}

	r := *existing
	if params.SenderName != nil {
		r.SenderName = *params.SenderName
	}

	if params.RecipientName != nil {
		r.RecipientName = *params.RecipientName
	}

	if params.CorridorID != nil {
		r.CorridorID = *params.CorridorID
	}

	if params.Amount != nil {
		r.Amount = *params.Amount
	}

	if params.Currency != nil {
		r.Currency = *params.Currency
	}

	if params.ExchangeRate != nil {
		r.ExchangeRate = *params.ExchangeRate
	}

	if params.PaymentMethod != nil {
		r.PaymentMethod = *params.PaymentMethod
	}

	if params.Status != nil {
		r.Status = *params.Status
	}

	if params.IsExpress != nil {
		r.IsExpress = *params.IsExpress
	}

	// The delete guard on corridors keeps this lookup from dangling.
	c := s.corridors[r.CorridorID]
	if params.TouchesFee() {
		r.Fee = remittance.ComputeFee(r.Amount, c.BaseFeePercentage, r.IsExpress)
	}

	s.remittances[id] = &r

	return cloneRemittance(&r, c), nil
}

func (s *Store) DeleteRemittance(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.remittances[id]
	if !ok {
		return apperror.NotFoundf("remittance with id %d not found", id)
	}

	if !r.Status.Deletable() {
		return apperror.Conflictf("only pending or cancelled remittances can be deleted, current status is '%s'", r.Status)
	}

	delete(s.remittances, id)

	return nil
}

// Stats aggregates under the read lock so the summary and the per-corridor
// breakdown describe the same instant.
func (s *Store) Stats(_ context.Context) (*remittance.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	corridors := make([]*corridor.Corridor, 0, len(s.corridors))
	for _, c := range s.corridors {
		corridors = append(corridors, c)
	}

	items := make([]*remittance.Remittance, 0, len(s.remittances))
	for _, r := range s.remittances {
		items = append(items, r)
	}

	return remittance.Aggregate(corridors, items), nil
}

func (s *Store) buildRemittance(params remittance.CreateParams, c *corridor.Corridor) *remittance.Remittance {
	now := time.Now().UTC()

	r := &remittance.Remittance{
		ID:            s.nextRemittanceID,
		SenderName:    params.SenderName,
		RecipientName: params.RecipientName,
		CorridorID:    params.CorridorID,
		Amount:        params.Amount,
		Currency:      params.Currency,
		ExchangeRate:  params.ExchangeRate,
		Fee:           remittance.ComputeFee(params.Amount, c.BaseFeePercentage, params.IsExpress),
		PaymentMethod: params.PaymentMethod,
		Status:        remittance.StatusPending,
		IsExpress:     params.IsExpress,
		CreatedAt:     now,
	}
	r.ReferenceCode = remittance.ReferenceCode(r.ID, now)
	s.nextRemittanceID++

	return r
}

func (s *Store) requireActiveCorridor(id int) (*corridor.Corridor, error) {
	c, ok := s.corridors[id]
	if !ok {
		return nil, apperror.Validationf("corridor with id %d does not exist", id)
	}

	if !c.IsActive {
		return nil, apperror.Validationf("corridor '%s' is not active", c.Name)
	}

	return c, nil
}

func cloneCorridor(c *corridor.Corridor) *corridor.Corridor {
	out := *c
	return &out
}

// cloneRemittance pairs the snapshot with its corridor so readers keep a
// consistent view after the lock is released.
func cloneRemittance(r *remittance.Remittance, c *corridor.Corridor) *remittance.Remittance {
	out := *r
	out.Corridor = nil

	if c != nil {
		out.Corridor = cloneCorridor(c)
	}

	return &out
}
