package worker

import "time"

// Defaults
const (
	DefaultWorkers    = 2
	DefaultQueueSize  = 64
	DefaultJobTimeout = 30 * time.Second
)

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
	LogMsgPoolStopped     = "Worker pool stopped"
)
