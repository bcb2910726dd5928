package board

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sony/sonyflake"
)

type actorKey struct{}

// WithActor attaches the name recorded on audit entries.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, strings.TrimSpace(actor))
}

func ActorFrom(ctx context.Context) string {
	if ctx != nil {
		if a, ok := ctx.Value(actorKey{}).(string); ok && a != "" {
			return a
		}
	}
	return DefaultActor
}

// Single process, so the machine id is fixed instead of derived from a private IP.
var logIDs = sonyflake.NewSonyflake(sonyflake.Settings{
	MachineID: func() (uint16, error) { return 1, nil },
})

// nextLogID returns a time-ordered id for audit entries.
func nextLogID() string {
	if logIDs != nil {
		if id, err := logIDs.NextID(); err == nil {
			return strconv.FormatUint(id, 10)
		}
	}
	return uuid.NewString()
}
