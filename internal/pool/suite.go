package pool

import "microbench/internal/benchmark"

// DefaultCount is the number of elements each trial appends.
const DefaultCount = 10_000_000

// Trial names, in the order they are run.
const (
	FastPoolAllocator = "fast_pool_allocator"
	Native            = "native"
	SyncPool          = "sync_pool"
)

// Config sizes the allocation trials.
type Config struct {
	Count    int
	NextSize int
	MaxSize  int
}

// Suite builds one trial per allocator. Each trial appends Count ints to a
// fresh list; clearing the list and purging the allocator happen in the
// untimed teardown of every trial.
func Suite(cfg Config) []benchmark.Trial {
	return []benchmark.Trial{
		listTrial(FastPoolAllocator, cfg.Count, NewNodePool[int](cfg.NextSize, cfg.MaxSize)),
		listTrial(Native, cfg.Count, NativeAllocator[int]{}),
		listTrial(SyncPool, cfg.Count, NewSyncPoolAllocator[int]()),
	}
}

func listTrial(name string, count int, alloc Allocator[int]) benchmark.Trial {
	var l *List[int]
	return benchmark.Trial{
		Name:       name,
		Iterations: 1,
		Setup: func() error {
			l = NewList[int](alloc)
			return nil
		},
		Op: func() error {
			for i := 0; i < count; i++ {
				l.PushBack(i)
			}
			return nil
		},
		Teardown: func() error {
			l.Clear()
			alloc.Purge()
			return nil
		},
	}
}
