package dor

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight requests of a batch.
const DefaultConcurrency = 4

// LookupError records a failed lookup for one object.
type LookupError struct {
	ObjectIdentifier string
	Err              error
}

// VersionsResult holds the outcome of a CurrentVersions batch.
type VersionsResult struct {
	Requested  int
	Successful map[string]int
	Failed     []LookupError
}

// CurrentVersions looks up the current version of each object, at most
// concurrency requests at a time. Individual failures are collected in the
// result and do not stop the batch; only cancellation of ctx does.
func (c *Client) CurrentVersions(ctx context.Context, objectIDs []string, concurrency int) (VersionsResult, error) {
	result := VersionsResult{
		Requested:  len(objectIDs),
		Successful: make(map[string]int, len(objectIDs)),
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	for _, id := range objectIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			version, err := c.Object(id).Version().Current(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, LookupError{ObjectIdentifier: id, Err: err})
				return nil
			}
			result.Successful[id] = version
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}
