// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Fixed keys of the device-local blobs. Each tracker keeps one document; the
// separate values of the browser version (waterIntake, sleepHistory,
// nutritionMeals, weightProgress, ...) are its top-level fields.
const (
	KeyToken            = "token"
	KeyUser             = "user"
	KeyWaterTracker     = "waterTracker"
	KeySleepTracker     = "sleepTracker"
	KeyNutritionTracker = "nutritionTracker"
	KeyProgressTracker  = "progressTracker"
)

// JSONBlob gives typed access to the JSON document stored under one key of
// a [BlobStore].
type JSONBlob[T any] struct {
	store BlobStore
	key   string
}

// NewJSONBlob binds key of s to the type T.
func NewJSONBlob[T any](s BlobStore, key string) *JSONBlob[T] {
	return &JSONBlob[T]{store: s, key: key}
}

// Key returns the bound key.
func (b *JSONBlob[T]) Key() string {
	return b.key
}

// Load decodes the stored document. ok is false when nothing is stored.
// An undecodable document yields [ErrMalformedBlob].
func (b *JSONBlob[T]) Load(ctx context.Context) (value T, ok bool, err error) {
	raw, ok, err := b.store.Get(ctx, b.key)
	if err != nil || !ok {
		return value, false, err
	}

	if err = json.Unmarshal(raw, &value); err != nil {
		var zero T
		return zero, false, fmt.Errorf("%w: key %q: %w", ErrMalformedBlob, b.key, err)
	}
	return value, true, nil
}

// Save encodes value and stores it under the bound key.
func (b *JSONBlob[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode local blob %q: %w", b.key, err)
	}
	return b.store.Put(ctx, b.key, raw)
}

// Clear removes the stored document.
func (b *JSONBlob[T]) Clear(ctx context.Context) error {
	return b.store.Delete(ctx, b.key)
}
