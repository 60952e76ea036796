package ticket

import "time"

// DefaultTTL is the request validity window used when the builder's TTL
// is unset.
const DefaultTTL = 10 * time.Minute

// Builder produces fresh login ticket requests. The zero value builds a
// request with no source or destination, a ten minute validity window,
// and the wall clock.
type Builder struct {
	// Source and Destination are carried into the header verbatim when
	// non-empty.
	Source      string
	Destination string

	// TTL is how long the request stays valid after generation.
	TTL time.Duration

	// Now supplies the generation instant. Tests override it; nil means
	// time.Now.
	Now func() time.Time
}

// Build returns a request for the named service. The service name is
// validated up front, uniqueId is derived from the generation instant
// (per-second granularity; a stronger uniqueness scheme is the issuing
// system's concern), and the timestamps are normalized to UTC and
// truncated to whole seconds to match the serialized form.
func (b Builder) Build(service string) (*LoginTicketRequest, error) {
	svc, err := NewService(service)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	ttl := b.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	generated := now().UTC().Truncate(time.Second)
	return &LoginTicketRequest{
		Version: DefaultVersion,
		Header: Header{
			Source:         b.Source,
			Destination:    b.Destination,
			UniqueID:       uint64(generated.Unix()),
			GenerationTime: generated,
			ExpirationTime: generated.Add(ttl),
		},
		Service: svc,
	}, nil
}
