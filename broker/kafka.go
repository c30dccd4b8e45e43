package broker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shopify/sarama"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/candishared"
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/config/env"
	"github.com/golangid/wedding-collab/logger"
	"github.com/golangid/wedding-collab/tracer"
)

// KafkaOptionFunc func type
type KafkaOptionFunc func(*KafkaBroker)

// KafkaSetBrokerHost set custom broker host
func KafkaSetBrokerHost(brokers []string) KafkaOptionFunc {
	return func(kb *KafkaBroker) {
		kb.BrokerHost = brokers
	}
}

// KafkaSetConfig set custom sarama configuration
func KafkaSetConfig(cfg *sarama.Config) KafkaOptionFunc {
	return func(kb *KafkaBroker) {
		kb.Config = cfg
	}
}

// KafkaSetPublisher set custom publisher
func KafkaSetPublisher(pub interfaces.Publisher) KafkaOptionFunc {
	return func(kb *KafkaBroker) {
		kb.publisher = pub
	}
}

// GetDefaultKafkaConfig construct default kafka producer config
func GetDefaultKafkaConfig(additionalConfigFunc ...func(*sarama.Config)) *sarama.Config {
	version := env.BaseEnv().Kafka.ClientVersion
	if version == "" {
		version = "2.0.0"
	}

	cfg := sarama.NewConfig()
	cfg.Version, _ = sarama.ParseKafkaVersion(version)
	cfg.ClientID = env.BaseEnv().Kafka.ClientID

	cfg.Producer.Retry.Max = 15
	cfg.Producer.Retry.Backoff = 50 * time.Millisecond
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	for _, additionalFunc := range additionalConfigFunc {
		additionalFunc(cfg)
	}

	return cfg
}

// KafkaBroker configuration
type KafkaBroker struct {
	BrokerHost []string
	Config     *sarama.Config
	Client     sarama.Client
	publisher  interfaces.Publisher
}

// NewKafkaBroker setup kafka configuration for publisher, empty option param for default configuration
func NewKafkaBroker(opts ...KafkaOptionFunc) *KafkaBroker {
	defer logger.LogWithDefer("Load Kafka broker configuration... ")()

	kb := new(KafkaBroker)
	kb.BrokerHost = env.BaseEnv().Kafka.Brokers
	for _, opt := range opts {
		opt(kb)
	}

	if kb.Config == nil {
		kb.Config = GetDefaultKafkaConfig()
	}

	saramaClient, err := sarama.NewClient(kb.BrokerHost, kb.Config)
	if err != nil {
		panic(fmt.Errorf("%s. Brokers: %s", err, strings.Join(kb.BrokerHost, ", ")))
	}
	kb.Client = saramaClient

	if kb.publisher == nil {
		kb.publisher = NewKafkaPublisher(saramaClient)
	}

	return kb
}

// GetPublisher method
func (k *KafkaBroker) GetPublisher() interfaces.Publisher {
	return k.publisher
}

// GetName method
func (k *KafkaBroker) GetName() types.Worker {
	return types.Kafka
}

// Health method
func (k *KafkaBroker) Health() map[string]error {
	var err error
	if len(k.Client.Brokers()) == 0 {
		err = errors.New("not ok")
	}
	return map[string]error{string(types.Kafka): err}
}

// Disconnect method
func (k *KafkaBroker) Disconnect(ctx context.Context) error {
	defer logger.LogWithDefer("\x1b[33;5mkafka_broker\x1b[0m: disconnect...")()

	return k.Client.Close()
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	broker   string
}

// NewKafkaPublisher setup only kafka sync publisher with client connection
func NewKafkaPublisher(client sarama.Client) interfaces.Publisher {
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		logger.LogYellow(fmt.Sprintf("(Kafka publisher: warning, %v. Should be panicked when using kafka publisher.) ", err))
		return nil
	}

	addrs := make([]string, 0, len(client.Brokers()))
	for _, cl := range client.Brokers() {
		addrs = append(addrs, cl.Addr())
	}
	return newKafkaPublisher(producer, strings.Join(addrs, ","))
}

func newKafkaPublisher(producer sarama.SyncProducer, broker string) *kafkaPublisher {
	return &kafkaPublisher{producer: producer, broker: broker}
}

// PublishMessage method
func (p *kafkaPublisher) PublishMessage(ctx context.Context, args *candishared.PublisherArgument) (err error) {
	trace := tracer.StartTrace(ctx, "kafka:publish_message")
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
		trace.SetError(err)
		trace.Finish()
	}()

	trace.SetTag("brokers", p.broker)
	trace.SetTag("topic", args.Topic)
	trace.SetTag("key", args.Key)
	trace.Log("header", args.Header)
	trace.Log("message", args.Message)

	msg := &sarama.ProducerMessage{
		Topic:     args.Topic,
		Key:       sarama.StringEncoder(args.Key),
		Value:     sarama.ByteEncoder(args.Message),
		Timestamp: time.Now(),
	}

	traceHeader := map[string]string{}
	trace.InjectRequestHeader(traceHeader)
	for k, v := range traceHeader {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	for keyHeader, valueHeader := range args.Header {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{
			Key:   []byte(keyHeader),
			Value: candihelper.ToBytes(valueHeader),
		})
	}

	_, _, err = p.producer.SendMessage(msg)
	return err
}
