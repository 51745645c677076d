// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/store"
)

// Status is the load state of a tracker.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Snapshot is a consistent copy of a tracker's state.
type Snapshot[T any] struct {
	Status Status
	// Data is the last known-good entity, or the optimistic one while
	// Pending is set.
	Data T
	// Pending is set while Data holds an optimistic change the server has
	// not confirmed yet.
	Pending bool
	// Offline is set when the tracker works against the device-local blob.
	Offline bool
	// Err is the single error slot; Message is its localized text.
	Err     error
	Message string
}

// Policy selects how a mutation is reconciled with the server.
type Policy int

const (
	// PolicyRefetch reloads after a successful write. A failed write keeps
	// the optimistic state visible until the next successful load.
	PolicyRefetch Policy = iota
	// PolicyRevert reloads after a failed write to restore server truth.
	PolicyRevert
)

type mode int

const (
	modeRemote mode = iota
	modeOffline
	modeUnauthorized
)

// mutation is one optimistic change of T.
type mutation[T any] struct {
	op string
	// apply validates the intent and returns the optimistic next state. An
	// error rejects the intent before anything is changed or sent.
	apply func(cur T) (T, error)
	// remote commits next to the server.
	remote func(ctx context.Context, next T) error
	policy Policy
}

// localState is the device-local copy of T.
type localState[T any] interface {
	Load(ctx context.Context) (T, bool, error)
	Save(ctx context.Context, v T) error
}

// localBlob maps T onto its local DTO L stored as a JSON blob.
type localBlob[T, L any] struct {
	blob *store.JSONBlob[L]
	to   func(T) L
	from func(L) T
}

func (b localBlob[T, L]) Load(ctx context.Context) (T, bool, error) {
	var zero T
	l, ok, err := b.blob.Load(ctx)
	if err != nil || !ok {
		return zero, ok, err
	}
	return b.from(l), true, nil
}

func (b localBlob[T, L]) Save(ctx context.Context, v T) error {
	return b.blob.Save(ctx, b.to(v))
}

// TrackerConfig carries the dependencies shared by all trackers.
type TrackerConfig struct {
	Session store.SessionStore
	// Blobs backs offline mode.
	Blobs store.BlobStore
	// Offline enables local-only operation while no session exists.
	Offline bool
	Logger  *logger.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// entity describes one tracked entity to the generic controller.
type entity[T any] struct {
	name        string
	initial     func() T
	clone       func(T) T
	zero        func(cur T) T
	fetch       func(ctx context.Context) (T, error)
	resetRemote func(ctx context.Context) error
	local       localState[T]
	// merge, when set, combines the current state with freshly loaded data.
	// It runs under the state lock.
	merge func(cur, loaded T) T
}

// syncController owns one entity's round trips: load, optimistic mutation
// with reconciliation, and reset.
//
// Every operation that may touch the network runs while holding queue, a
// weight-1 semaphore whose waiters are served in FIFO order, so operations
// of one controller never overlap and complete in call order. The
// reconciliation load of a mutation runs inside the same slot.
type syncController[T any] struct {
	entity[T]

	queue *semaphore.Weighted

	mu     sync.RWMutex
	state  Snapshot[T]
	closed bool

	life  context.Context
	close context.CancelFunc

	session store.SessionStore
	offline bool
	logger  *logger.Logger
	now     func() time.Time
}

func newSyncController[T any](cfg TrackerConfig, e entity[T]) *syncController[T] {
	life, cancel := context.WithCancel(context.Background())
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &syncController[T]{
		entity:  e,
		queue:   semaphore.NewWeighted(1),
		state:   Snapshot[T]{Status: StatusIdle, Data: e.initial()},
		life:    life,
		close:   cancel,
		session: cfg.Session,
		offline: cfg.Offline,
		logger:  cfg.Logger,
		now:     now,
	}
}

// Name returns the tracker name used in logs.
func (c *syncController[T]) Name() string {
	return c.name
}

// Snapshot returns a consistent copy of the current state.
func (c *syncController[T]) Snapshot() Snapshot[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.state
	s.Data = c.clone(s.Data)
	s.Message = UserMessage(s.Err)
	return s
}

// Close disposes the controller. In-flight operations are cancelled and
// their results discarded; later calls fail with [ErrControllerClosed].
func (c *syncController[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.close()
}

// Load fetches the entity and replaces the local state wholesale. On
// failure the last known-good data stays visible.
func (c *syncController[T]) Load(ctx context.Context) (T, error) {
	ctx, release, err := c.enter(ctx)
	if err != nil {
		return c.Snapshot().Data, err
	}
	defer release()

	return c.load(ctx)
}

// Refresh is Load without the result, for the background refresher.
func (c *syncController[T]) Refresh(ctx context.Context) error {
	_, err := c.Load(ctx)
	return err
}

// Reset clears the entity server-side (or locally when offline) and then
// sets the local state to the zero value without refetching.
func (c *syncController[T]) Reset(ctx context.Context) (T, error) {
	ctx, release, err := c.enter(ctx)
	if err != nil {
		return c.Snapshot().Data, err
	}
	defer release()

	log := c.logger.With().Str("func", "syncController.Reset").Str("tracker", c.name).Logger()

	m := c.mode()
	if m == modeUnauthorized {
		return c.fail(ErrUnauthorized, nil)
	}

	zero := c.zero(c.Snapshot().Data)
	switch m {
	case modeOffline:
		if err = c.local.Save(ctx, zero); err != nil {
			log.Err(err).Msg("failed to write local blob")
			return c.fail(fmt.Errorf("%w: %w", ErrStorageFailure, err), nil)
		}
	case modeRemote:
		if err = c.resetRemote(ctx); err != nil {
			log.Err(err).Msg("remote reset failed")
			return c.fail(c.remoteError(ctx, err), nil)
		}
	}

	return c.commit(func(s *Snapshot[T]) {
		s.Status = StatusReady
		s.Data = zero
		s.Pending = false
		s.Offline = m == modeOffline
		s.Err = nil
	})
}

// mutate applies mt optimistically and commits it according to its policy.
func (c *syncController[T]) mutate(ctx context.Context, mt mutation[T]) (T, error) {
	ctx, release, err := c.enter(ctx)
	if err != nil {
		return c.Snapshot().Data, err
	}
	defer release()

	log := c.logger.With().Str("func", "syncController.mutate").Str("tracker", c.name).Str("op", mt.op).Logger()

	prev := c.Snapshot().Data
	next, err := mt.apply(c.clone(prev))
	if err != nil {
		return c.fail(err, nil)
	}

	m := c.mode()
	if m == modeUnauthorized {
		return c.fail(ErrUnauthorized, nil)
	}

	// optimistic
	if _, err = c.commit(func(s *Snapshot[T]) {
		s.Data = next
		s.Pending = true
	}); err != nil {
		return prev, err
	}

	if m == modeOffline {
		if err = c.local.Save(ctx, next); err != nil {
			log.Err(err).Msg("failed to write local blob")
			return c.fail(fmt.Errorf("%w: %w", ErrStorageFailure, err), nil)
		}
		return c.commit(func(s *Snapshot[T]) {
			s.Status = StatusReady
			s.Pending = false
			s.Offline = true
			s.Err = nil
		})
	}

	writeErr := mt.remote(ctx, next)
	if writeErr == nil {
		log.Debug().Msg("write accepted")
		if mt.policy == PolicyRefetch {
			return c.load(ctx)
		}
		return c.commit(func(s *Snapshot[T]) {
			s.Status = StatusReady
			s.Pending = false
			s.Offline = false
			s.Err = nil
		})
	}

	log.Err(writeErr).Msg("write failed")
	mapped := c.remoteError(ctx, writeErr)

	if mt.policy == PolicyRefetch {
		// the optimistic state stays visible until the next successful load
		return c.fail(mapped, nil)
	}

	// revert: drop the optimistic change locally, then restore server truth
	if _, err = c.commit(func(s *Snapshot[T]) {
		s.Data = prev
		s.Pending = false
	}); err != nil {
		return prev, err
	}
	if _, loadErr := c.load(ctx); loadErr != nil {
		log.Err(loadErr).Msg("reload after failed write failed")
	}
	// the write error stays in the slot even when the reload succeeded
	return c.fail(mapped, nil)
}

// edit changes the local state without any round trip. Used for draft
// values committed later by an explicit mutation.
func (c *syncController[T]) edit(apply func(cur T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.clone(c.state.Data), ErrControllerClosed
	}

	next, err := apply(c.clone(c.state.Data))
	if err != nil {
		c.state.Err = err
		return c.clone(c.state.Data), err
	}
	c.state.Data = next
	c.state.Err = nil
	return c.clone(next), nil
}

// load must be called while holding the queue.
func (c *syncController[T]) load(ctx context.Context) (T, error) {
	log := c.logger.With().Str("func", "syncController.load").Str("tracker", c.name).Logger()

	m := c.mode()
	if m == modeUnauthorized {
		return c.fail(ErrUnauthorized, func(s *Snapshot[T]) { s.Status = StatusError })
	}

	if _, err := c.commit(func(s *Snapshot[T]) { s.Status = StatusLoading }); err != nil {
		return c.Snapshot().Data, err
	}

	var (
		data T
		err  error
	)
	if m == modeOffline {
		var ok bool
		data, ok, err = c.local.Load(ctx)
		if err != nil {
			log.Err(err).Msg("failed to read local blob")
			err = fmt.Errorf("%w: %w", ErrStorageFailure, err)
		} else if !ok {
			data = c.initial()
		}
	} else {
		data, err = c.fetch(ctx)
		if err != nil {
			log.Err(err).Msg("fetch failed")
			err = c.remoteError(ctx, err)
		}
	}

	if err != nil {
		return c.fail(err, func(s *Snapshot[T]) { s.Status = StatusError })
	}

	log.Debug().Bool("offline", m == modeOffline).Msg("loaded")
	return c.commit(func(s *Snapshot[T]) {
		s.Status = StatusReady
		if c.merge != nil {
			data = c.merge(s.Data, data)
		}
		s.Data = data
		s.Pending = false
		s.Offline = m == modeOffline
		s.Err = nil
	})
}

// enter checks the controller is open and takes the queue slot. The
// returned context is cancelled by Close.
func (c *syncController[T]) enter(ctx context.Context) (context.Context, func(), error) {
	if c.isClosed() {
		return ctx, nil, ErrControllerClosed
	}

	opCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.life, cancel)

	if err := c.queue.Acquire(opCtx, 1); err != nil {
		stop()
		cancel()
		if c.isClosed() {
			return ctx, nil, ErrControllerClosed
		}
		return ctx, nil, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	return opCtx, func() {
		c.queue.Release(1)
		stop()
		cancel()
	}, nil
}

// commit applies f to the state unless the controller was closed, in which
// case the result is discarded.
func (c *syncController[T]) commit(f func(s *Snapshot[T])) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.clone(c.state.Data), ErrControllerClosed
	}
	f(&c.state)
	return c.clone(c.state.Data), nil
}

// fail replaces the error slot with err and returns it.
func (c *syncController[T]) fail(err error, f func(s *Snapshot[T])) (T, error) {
	data, cerr := c.commit(func(s *Snapshot[T]) {
		if f != nil {
			f(s)
		}
		s.Err = err
	})
	if cerr != nil {
		return data, cerr
	}
	return data, err
}

// remoteError maps an adapter error and drops the session when the server
// rejected the credential.
func (c *syncController[T]) remoteError(ctx context.Context, err error) error {
	mapped := mapAdapterError(err)
	if errors.Is(err, adapter.ErrUnauthorized) && !c.isClosed() {
		if clearErr := c.session.Clear(context.WithoutCancel(ctx)); clearErr != nil {
			c.logger.Err(clearErr).Str("func", "syncController.remoteError").Msg("failed to clear rejected session")
		}
	}
	return mapped
}

func (c *syncController[T]) mode() mode {
	if c.session.Current().IsAuthenticated() {
		return modeRemote
	}
	if c.offline {
		return modeOffline
	}
	return modeUnauthorized
}

func (c *syncController[T]) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
