// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/sdnscreen/assess"
	"github.com/poiesic/sdnscreen/cache"
	"github.com/poiesic/sdnscreen/core"
)

// Cache is a BadgerDB-backed assessment cache. It owns its backend.
type Cache struct {
	backend *Backend
	logger  *slog.Logger
}

var _ assess.AssessmentCache = (*Cache)(nil)

// Open opens (or creates) an on-disk assessment cache at path.
func Open(path string) (*Cache, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return newCache(backend), nil
}

// NewCache wraps an existing backend in a Cache.
func NewCache(backend *Backend) (*Cache, error) {
	if backend == nil {
		return nil, cache.ErrBackendRequired
	}
	return newCache(backend), nil
}

func newCache(backend *Backend) *Cache {
	return &Cache{
		backend: backend,
		logger:  slog.Default().With("component", "assessment-cache"),
	}
}

// Get returns the cached assessment for key, if present.
// A missing key is (nil, false, nil); an undecodable value is treated the
// same way so stale formats never break a search.
func (c *Cache) Get(ctx context.Context, key core.ID) (*assess.Assessment, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var data []byte
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAssessmentKey(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	}, false)

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	assessment, err := cache.UnmarshalAssessment(data)
	if err != nil {
		c.logger.Warn("discarding undecodable cached assessment", "key", key, "err", err)
		return nil, false, nil
	}
	return assessment, true, nil
}

// Put stores an assessment under key, overwriting any previous value.
func (c *Cache) Put(ctx context.Context, key core.ID, assessment *assess.Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := cache.MarshalAssessment(assessment)
	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeAssessmentKey(key), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (c *Cache) Close() error {
	return c.backend.Close()
}
