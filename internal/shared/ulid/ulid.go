package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Run ids are ULIDs so output keys sort
// by creation time.
var NewULID = func() string {
	return ulid.Make().String()
}
