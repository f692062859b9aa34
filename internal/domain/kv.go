package domain

import "context"

// Keys under which the journal is persisted.
const (
	KeyEntries    = "ct.entries"
	KeyWorkouts   = "ct.workouts"
	KeyWeight     = "ct.weight"
	KeyWeightUnit = "ct.weightUnit"
	KeyHeight     = "ct.height"
	KeyHeightUnit = "ct.heightUnit"
)

// KeyValueStore is the port for durable string storage. Get reports a
// missing key with found=false and a nil error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
