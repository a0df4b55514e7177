package reservation

import "context"

// Submitter sends a built payload to a venue's reservation endpoint.
type Submitter interface {
	Name() string
	Submit(ctx context.Context, venue Venue, p Payload) error
}
