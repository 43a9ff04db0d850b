// Where: cli/internal/domain/tracking/tracking.go
// What: Correlation data threaded through a command invocation.
// Why: Let per-platform steps extend tracking data without touching the shared copy.
package tracking

import (
	"maps"

	"github.com/google/uuid"
)

const (
	KeyTrackingID = "tracking_id"
	KeyCommand    = "command"
	KeyPlatform   = "platform"
)

// Context is opaque key/value correlation data. Treat values as read-only;
// derive new contexts with With.
type Context map[string]any

// New seeds a context with a fresh tracking id and the command name.
func New(command string) Context {
	ctx := Context{KeyTrackingID: uuid.NewString()}
	if command != "" {
		ctx[KeyCommand] = command
	}
	return ctx
}

// Clone returns a shallow copy. A nil context clones to an empty one.
func (c Context) Clone() Context {
	out := make(Context, len(c)+1)
	maps.Copy(out, c)
	return out
}

// With returns a copy of c with key set to value.
func (c Context) With(key string, value any) Context {
	out := c.Clone()
	out[key] = value
	return out
}

// TrackingID returns the tracking id, or "" when absent.
func (c Context) TrackingID() string {
	id, _ := c[KeyTrackingID].(string)
	return id
}
