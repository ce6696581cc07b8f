package zone

import "errors"

// Construction errors. Queries never fail; only constructors check their input.
var (
	ErrTooFewPoints      = errors.New("zone: polygon needs at least 3 points")
	ErrDegenerateSegment = errors.New("zone: segment endpoints must not coincide")
	ErrNoMembers         = errors.New("zone: composite must contain at least one zone")
	ErrNilMember         = errors.New("zone: composite member is nil")
	ErrDuplicateMember   = errors.New("zone: composite member appears more than once")
)
