package report

import (
	"context"

	"golang.org/x/sync/singleflight"
)

var exportGroup singleflight.Group

// singleflightExport collapses concurrent identical export requests into one
// workbook build. The caller's context still bounds the wait.
func singleflightExport(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error, bool) {
	resultChan := exportGroup.DoChan(key, func() (interface{}, error) {
		return fn(ctx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err(), false
	case res := <-resultChan:
		return res.Val, res.Err, res.Shared
	}
}
