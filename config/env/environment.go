package env

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/golangid/wedding-collab/candihelper"
)

// Env model
type Env struct {
	ServiceName string
	BuildNumber string
	// Env on application
	Environment       string
	LoadConfigTimeout time.Duration

	DebugMode bool

	// HTTPPort config
	HTTPPort     uint16
	HTTPRootPath string

	// BasicAuthUsername config
	BasicAuthUsername string
	// BasicAuthPassword config
	BasicAuthPassword string
	// JWTSecret shared HS256 secret for bearer token
	JWTSecret string

	// JaegerTracingHost env
	JaegerTracingHost string
	// JaegerMaxPacketSize env
	JaegerMaxPacketSize int

	// Broker environment
	Kafka struct {
		Brokers       []string
		ClientVersion string
		ClientID      string
	}
	RabbitMQ struct {
		Broker       string
		ExchangeName string
	}

	// MaxGoroutines env for goroutine semaphore
	MaxGoroutines int

	// Database environment
	DbMongoWriteHost, DbMongoReadHost string
	DbSQLWriteDSN, DbSQLReadDSN       string
	DbRedisReadDSN, DbRedisWriteDSN   string

	StartAt string
}

var env Env

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Env) {
	env = newEnv
}

// Load environment, panic if required environment is missing
func Load(serviceName string) {
	var ok bool
	env = Env{ServiceName: serviceName}

	// load main .env and additional .env in app
	if err := godotenv.Load(os.Getenv(candihelper.WORKDIR) + ".env"); err != nil {
		log.Printf("Warning: load env, %v", err)
	}

	mErrs := candihelper.NewMultiError()

	env.BuildNumber = os.Getenv("BUILD_NUMBER")
	env.Environment = os.Getenv("ENVIRONMENT")

	var err error
	if env.LoadConfigTimeout, err = time.ParseDuration(os.Getenv("LOAD_CONFIG_TIMEOUT")); err != nil {
		env.LoadConfigTimeout = 10 * time.Second
	}
	if env.DebugMode, err = strconv.ParseBool(os.Getenv("DEBUG_MODE")); err != nil {
		env.DebugMode = true
	}

	httpPort, err := strconv.Atoi(os.Getenv("HTTP_PORT"))
	if err != nil || httpPort <= 0 || httpPort > 65535 {
		mErrs.Append("HTTP_PORT", errors.New("missing or invalid value for HTTP_PORT environment"))
	}
	env.HTTPPort = uint16(httpPort)
	env.HTTPRootPath = os.Getenv("HTTP_ROOT_PATH")

	env.BasicAuthUsername, ok = os.LookupEnv("BASIC_AUTH_USERNAME")
	if !ok {
		mErrs.Append("BASIC_AUTH_USERNAME", errors.New("missing BASIC_AUTH_USERNAME environment"))
	}
	env.BasicAuthPassword, ok = os.LookupEnv("BASIC_AUTH_PASS")
	if !ok {
		mErrs.Append("BASIC_AUTH_PASS", errors.New("missing BASIC_AUTH_PASS environment"))
	}
	env.JWTSecret, ok = os.LookupEnv("JWT_SECRET")
	if !ok || env.JWTSecret == "" {
		mErrs.Append("JWT_SECRET", errors.New("missing JWT_SECRET environment"))
	}

	env.JaegerTracingHost = os.Getenv("JAEGER_TRACING_HOST")
	jaegerMaxPacketSize, err := strconv.Atoi(os.Getenv("JAEGER_MAX_PACKET_SIZE"))
	if err != nil || jaegerMaxPacketSize <= 0 {
		jaegerMaxPacketSize = 65000 // default max packet size of UDP
	}
	env.JaegerMaxPacketSize = jaegerMaxPacketSize * int(candihelper.Byte)

	parseBrokerEnv()

	maxGoroutines, err := strconv.Atoi(os.Getenv("MAX_GOROUTINES"))
	if err != nil || maxGoroutines <= 0 {
		maxGoroutines = 10
	}
	env.MaxGoroutines = maxGoroutines

	parseDatabaseEnv()

	env.StartAt = time.Now().Format(time.RFC3339)

	if mErrs.HasError() {
		panic("Basic environment error: \n" + mErrs.Error())
	}
}

func parseBrokerEnv() {
	if kafkaBrokerEnv := os.Getenv("KAFKA_BROKERS"); kafkaBrokerEnv != "" {
		env.Kafka.Brokers = strings.Split(kafkaBrokerEnv, ",")
	}
	env.Kafka.ClientID = os.Getenv("KAFKA_CLIENT_ID")
	env.Kafka.ClientVersion = os.Getenv("KAFKA_CLIENT_VERSION")

	env.RabbitMQ.Broker = os.Getenv("RABBITMQ_BROKER")
	env.RabbitMQ.ExchangeName = os.Getenv("RABBITMQ_EXCHANGE_NAME")
	if env.RabbitMQ.ExchangeName == "" {
		env.RabbitMQ.ExchangeName = "amq.direct"
	}
}

func parseDatabaseEnv() {
	env.DbMongoWriteHost = os.Getenv("MONGODB_HOST_WRITE")
	env.DbMongoReadHost = os.Getenv("MONGODB_HOST_READ")
	env.DbSQLWriteDSN = os.Getenv("SQL_DB_WRITE_DSN")
	env.DbSQLReadDSN = os.Getenv("SQL_DB_READ_DSN")
	env.DbRedisReadDSN = os.Getenv("REDIS_READ_DSN")
	env.DbRedisWriteDSN = os.Getenv("REDIS_WRITE_DSN")
}
