package kafka_config

import "time"

const (
	// Empty broker list disables publishing
	DefaultKafkaBrokers = ""

	DefaultSessionsTopic    = "training-sessions"
	DefaultSessionsDLQTopic = "dlq-training-sessions"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerWriteTimeout = 5 * time.Second
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false

	DefaultEnableMiddleware = true
)
