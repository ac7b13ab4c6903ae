package navmesh

import "sync"

// taskIndexed runs fn over data with workersCount goroutines, each result
// landing in the slot matching its input index. Keeping results in input
// order makes the merge independent of scheduling, so a parallel run
// reproduces the sequential one bit for bit.
func taskIndexed[T, R any](workersCount int, data []T, fn func(data T) R) []R {
	results := make([]R, len(data))

	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min(start+chunkSize, dataSize)
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = fn(data[i])
			}
		}(start, end)
	}
	wg.Wait()

	return results
}
