package broker

import (
	"context"
	"errors"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"

	"github.com/golangid/wedding-collab/candishared"
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/codebase/interfaces"
)

type fakeBroker struct {
	name types.Worker
}

func (f *fakeBroker) GetPublisher() interfaces.Publisher   { return nil }
func (f *fakeBroker) GetName() types.Worker                { return f.name }
func (f *fakeBroker) Health() map[string]error             { return nil }
func (f *fakeBroker) Disconnect(ctx context.Context) error { return nil }

func TestInitBrokers(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		b := InitBrokers(&fakeBroker{name: types.Kafka}, &fakeBroker{name: types.RabbitMQ})
		assert.Len(t, b.GetBrokers(), 2)
	})
	t.Run("Testcase #2: Negative, duplicate broker", func(t *testing.T) {
		assert.Panics(t, func() {
			InitBrokers(&fakeBroker{name: types.Kafka}, &fakeBroker{name: types.Kafka})
		})
	})
}

func TestKafkaPublishMessage(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			if string(val) != `{"email":"bob@x.com"}` {
				return errors.New("unexpected message")
			}
			return nil
		})

		pub := newKafkaPublisher(producer, "localhost:9092")
		err := pub.PublishMessage(context.Background(), &candishared.PublisherArgument{
			Topic:   "wedding-invitation",
			Key:     "w1",
			Header:  map[string]interface{}{"event": "invited"},
			Message: []byte(`{"email":"bob@x.com"}`),
		})
		assert.NoError(t, err)
		assert.NoError(t, producer.Close())
	})

	t.Run("Testcase #2: Negative", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		pub := newKafkaPublisher(producer, "localhost:9092")
		err := pub.PublishMessage(context.Background(), &candishared.PublisherArgument{Topic: "wedding-invitation"})
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		assert.NoError(t, producer.Close())
	})
}

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
	closed        bool
}

func (f *fakeChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeOpener struct {
	ch  *fakeChannel
	err error
}

func (f *fakeOpener) Channel() (AMQPChannel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ch, nil
}

func TestRabbitMQPublishMessage(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		ch := &fakeChannel{}
		pub := NewRabbitMQPublisher(&fakeOpener{ch: ch}, "wedding")
		err := pub.PublishMessage(context.Background(), &candishared.PublisherArgument{
			Topic:   "wedding-invitation",
			Key:     "w1",
			Message: []byte(`{}`),
		})
		assert.NoError(t, err)
		assert.Equal(t, "wedding", ch.exchange)
		assert.Equal(t, "wedding-invitation", ch.key)
		assert.Equal(t, "application/json", ch.msg.ContentType)
		assert.Equal(t, []byte(`{}`), ch.msg.Body)
		assert.True(t, ch.closed)
	})

	t.Run("Testcase #2: Negative, cannot open channel", func(t *testing.T) {
		pub := NewRabbitMQPublisher(&fakeOpener{err: amqp.ErrClosed}, "wedding")
		err := pub.PublishMessage(context.Background(), &candishared.PublisherArgument{Topic: "wedding-invitation"})
		assert.ErrorIs(t, err, amqp.ErrClosed)
	})
}
