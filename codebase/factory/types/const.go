package types

// Server is the type returned by a classifier server
type Server string

// Worker is the type returned by a classifier broker
type Worker string

// Service is the type returned by a classifier service
type Service string

// Module is the type returned by a classifier module
type Module string

const (
	// REST server
	REST Server = "rest"

	// Kafka broker
	Kafka Worker = "kafka"
	// RabbitMQ broker
	RabbitMQ Worker = "rabbit_mq"
)
