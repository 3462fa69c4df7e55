package domain

import "context"

// Assistant answers free-form learning questions. The platform passes the
// query through to the backing model without retrying, streaming, or caching
// responses; every call reaches the upstream service.
type Assistant interface {
	Answer(ctx context.Context, query string) (string, error)
}
