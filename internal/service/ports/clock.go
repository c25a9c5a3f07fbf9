package ports

import "time"

// Clock abstracts "now" so temporal validation stays deterministic in tests.
type Clock interface {
	Now() time.Time
}
