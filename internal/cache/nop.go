package cache

import (
	"context"
	"time"
)

// Nop используется, когда адрес Redis не задан: ничего не хранит.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Nop) Invalidate(context.Context, ...string) error           { return nil }
func (Nop) Version(context.Context, string) (int64, error)        { return 0, nil }
func (Nop) Bump(context.Context, string) error                    { return nil }
func (Nop) Close() error                                          { return nil }

func (Nop) SetIfVersion(context.Context, string, any, time.Duration, string, int64) (bool, error) {
	return false, nil
}
