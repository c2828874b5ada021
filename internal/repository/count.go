package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
)

const countAlias = "count"

// countQuery runs a server-side aggregation count so callers never pull whole
// collections just to measure them.
func countQuery(ctx context.Context, q firestore.Query, label string) (int64, error) {
	results, err := q.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", label, err)
	}
	raw, ok := results[countAlias]
	if !ok {
		return 0, fmt.Errorf("count %s: aggregation result missing %q", label, countAlias)
	}
	value, ok := raw.(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("count %s: unexpected aggregation result type %T", label, raw)
	}
	return value.GetIntegerValue(), nil
}
