package barriers

import (
	"context"
	"fmt"

	"github.com/xunman0/BarrierLog/internal/domain/dataset"
	"github.com/xunman0/BarrierLog/internal/jotform"
)

// Fetch retrieves the current barrier-log dataset: submissions from the
// API, normalized, assembled into a fresh Dataset. Every call produces
// an independently owned Dataset; nothing is cached between calls.
//
// Duplicate submission IDs coming back from the API violate the dataset
// invariant and surface as a schema error.
func Fetch(ctx context.Context, c *jotform.Client) (*dataset.Dataset, error) {
	subs, err := c.Submissions(ctx)
	if err != nil {
		return nil, err
	}
	d, err := dataset.New(Normalize(subs))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jotform.ErrSchema, err)
	}
	return d, nil
}
