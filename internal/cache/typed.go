// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"fmt"
)

// Identifiable is implemented by records that list patches match on.
type Identifiable interface {
	EntityID() int64
}

// Query is the typed form of Client.Query.
func Query[T any](ctx context.Context, c *Client, scope string, key Key, token string,
	fetch func(ctx context.Context, token string) (T, error)) (T, error) {
	var zero T

	value, err := c.Query(ctx, scope, key, token, func(ctx context.Context, token string) (any, error) {
		return fetch(ctx, token)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, key, value)
	}
	return typed, nil
}

// Patch rewrites every entry under tag that holds a T. Entries of other
// types are left alone. It returns the number of entries patched.
func Patch[T any](c *Client, tag string, fn func(old T) T) int {
	return c.patch(tag, func(value any) (any, bool) {
		typed, ok := value.(T)
		if !ok {
			return nil, false
		}
		return fn(typed), true
	})
}

// ReplaceByID returns a copy of list with the element whose id matches
// item's replaced by item. The input slice is not modified.
func ReplaceByID[T Identifiable](list []T, item T) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if out[i].EntityID() == item.EntityID() {
			out[i] = item
		}
	}
	return out
}
