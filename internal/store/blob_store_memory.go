// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"sync"
)

// MemoryDSN selects the process-local in-memory blob store.
const MemoryDSN = ":memory:"

type memoryBlobStore struct {
	mu     sync.RWMutex
	blobs  map[string][]byte
	closed bool
}

// NewMemoryBlobStore returns a [BlobStore] that keeps blobs in process
// memory only.
func NewMemoryBlobStore() BlobStore {
	return &memoryBlobStore{blobs: make(map[string][]byte)}
}

func (m *memoryBlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrStoreClosed
	}

	v, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (m *memoryBlobStore) Put(ctx context.Context, key string, value []byte) error {
	return m.PutMany(ctx, map[string][]byte{key: value})
}

func (m *memoryBlobStore) PutMany(_ context.Context, blobs map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	for k, v := range blobs {
		m.blobs[k] = bytes.Clone(v)
	}
	return nil
}

func (m *memoryBlobStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	for _, k := range keys {
		delete(m.blobs, k)
	}
	return nil
}

func (m *memoryBlobStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.blobs = nil
	return nil
}
