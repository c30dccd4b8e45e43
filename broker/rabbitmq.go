package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/streadway/amqp"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/candishared"
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/config/env"
	"github.com/golangid/wedding-collab/logger"
	"github.com/golangid/wedding-collab/tracer"
)

// RabbitMQOptionFunc func type
type RabbitMQOptionFunc func(*RabbitMQBroker)

// RabbitMQSetBrokerHost set custom broker host
func RabbitMQSetBrokerHost(brokers string) RabbitMQOptionFunc {
	return func(bk *RabbitMQBroker) {
		bk.brokerHost = brokers
	}
}

// RabbitMQSetExchange set custom exchange name for publishing
func RabbitMQSetExchange(exchange string) RabbitMQOptionFunc {
	return func(bk *RabbitMQBroker) {
		bk.exchange = exchange
	}
}

// RabbitMQSetPublisher set custom publisher
func RabbitMQSetPublisher(pub interfaces.Publisher) RabbitMQOptionFunc {
	return func(bk *RabbitMQBroker) {
		bk.publisher = pub
	}
}

// RabbitMQBroker broker
type RabbitMQBroker struct {
	brokerHost string
	exchange   string
	conn       *amqp.Connection
	publisher  interfaces.Publisher
}

// NewRabbitMQBroker setup rabbitmq configuration for publisher, default connection from RABBITMQ_BROKER environment
func NewRabbitMQBroker(opts ...RabbitMQOptionFunc) *RabbitMQBroker {
	defer logger.LogWithDefer("Load RabbitMQ broker configuration... ")()
	var err error

	rabbitmq := new(RabbitMQBroker)
	rabbitmq.brokerHost = env.BaseEnv().RabbitMQ.Broker
	rabbitmq.exchange = env.BaseEnv().RabbitMQ.ExchangeName
	for _, opt := range opts {
		opt(rabbitmq)
	}

	rabbitmq.conn, err = amqp.Dial(rabbitmq.brokerHost)
	if err != nil {
		panic("RabbitMQ: cannot connect to server broker: " + err.Error())
	}

	ch, err := rabbitmq.conn.Channel()
	if err != nil {
		panic("RabbitMQ channel: " + err.Error())
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(rabbitmq.exchange, "direct", true, false, false, false, nil); err != nil {
		panic("RabbitMQ exchange declare direct: " + err.Error())
	}

	if rabbitmq.publisher == nil {
		rabbitmq.publisher = NewRabbitMQPublisher(&amqpChannelOpener{conn: rabbitmq.conn}, rabbitmq.exchange)
	}

	return rabbitmq
}

// GetPublisher method
func (r *RabbitMQBroker) GetPublisher() interfaces.Publisher {
	return r.publisher
}

// GetName method
func (r *RabbitMQBroker) GetName() types.Worker {
	return types.RabbitMQ
}

// Health method
func (r *RabbitMQBroker) Health() map[string]error {
	var err error
	if r.conn.IsClosed() {
		err = amqp.ErrClosed
	}
	return map[string]error{string(types.RabbitMQ): err}
}

// Disconnect method
func (r *RabbitMQBroker) Disconnect(ctx context.Context) error {
	defer logger.LogWithDefer("\x1b[33;5mrabbitmq_broker\x1b[0m: disconnect...")()

	return r.conn.Close()
}

// AMQPChannel is the subset of *amqp.Channel used by the publisher
type AMQPChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// ChannelOpener open new amqp channel for every publish
type ChannelOpener interface {
	Channel() (AMQPChannel, error)
}

type amqpChannelOpener struct {
	conn *amqp.Connection
}

func (o *amqpChannelOpener) Channel() (AMQPChannel, error) {
	return o.conn.Channel()
}

type rabbitMQPublisher struct {
	opener   ChannelOpener
	exchange string
}

// NewRabbitMQPublisher setup only rabbitmq publisher with channel opener
func NewRabbitMQPublisher(opener ChannelOpener, exchange string) interfaces.Publisher {
	return &rabbitMQPublisher{opener: opener, exchange: exchange}
}

// PublishMessage method
func (r *rabbitMQPublisher) PublishMessage(ctx context.Context, args *candishared.PublisherArgument) (err error) {
	trace := tracer.StartTrace(ctx, "rabbitmq:publish_message")
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
		trace.SetError(err)
		trace.Finish()
	}()

	ch, err := r.opener.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	contentType := args.ContentType
	if contentType == "" {
		contentType = candihelper.HeaderMIMEApplicationJSON
	}

	trace.SetTag("exchange", r.exchange)
	trace.SetTag("topic", args.Topic)
	trace.SetTag("key", args.Key)

	headers := amqp.Table{}
	for k, v := range args.Header {
		headers[k] = v
	}
	traceHeader := map[string]string{}
	trace.InjectRequestHeader(traceHeader)
	for k, v := range traceHeader {
		headers[k] = v
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		ContentType:  contentType,
		MessageId:    args.Key,
		Body:         args.Message,
		Headers:      headers,
	}

	trace.Log("header", msg.Headers)
	trace.Log("message", msg.Body)

	return ch.Publish(
		r.exchange,
		args.Topic, // routing key
		false,      // mandatory
		false,      // immediate
		msg)
}
