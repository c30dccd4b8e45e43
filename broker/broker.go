package broker

import (
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/codebase/interfaces"
)

// Broker model
type Broker struct {
	brokers map[types.Worker]interfaces.Broker
}

/*
InitBrokers register all broker for publisher

* for Kafka, pass NewKafkaBroker(...KafkaOptionFunc) in param, init kafka broker configuration from env
KAFKA_BROKERS, KAFKA_CLIENT_ID, KAFKA_CLIENT_VERSION

* for RabbitMQ, pass NewRabbitMQBroker(...RabbitMQOptionFunc) in param, init rabbitmq broker configuration from env
RABBITMQ_BROKER, RABBITMQ_EXCHANGE_NAME
*/
func InitBrokers(brokers ...interfaces.Broker) *Broker {
	brokerInst := &Broker{
		brokers: make(map[types.Worker]interfaces.Broker),
	}
	for _, bk := range brokers {
		brokerInst.RegisterBroker(bk.GetName(), bk)
	}
	return brokerInst
}

// GetBrokers get all registered broker
func (b *Broker) GetBrokers() map[types.Worker]interfaces.Broker {
	return b.brokers
}

// RegisterBroker register new broker, panic when broker name has been registered
func (b *Broker) RegisterBroker(brokerName types.Worker, bk interfaces.Broker) {
	if b.brokers == nil {
		b.brokers = make(map[types.Worker]interfaces.Broker)
	}

	if _, ok := b.brokers[brokerName]; ok {
		panic("Register broker: " + brokerName + " has been registered")
	}
	b.brokers[brokerName] = bk
}
