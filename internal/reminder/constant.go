package reminder

import "time"

const (
	DefaultInterval  = 60 * time.Second
	DefaultBatchSize = 100
)
