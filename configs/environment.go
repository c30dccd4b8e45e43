package configs

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golangid/wedding-collab/candihelper"
)

// Store backend of collaborator records
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Environment additional in this service
type Environment struct {
	// CollaboratorStore one of mongo, postgres, memory
	CollaboratorStore string

	// UserDirectory one of mongo, http
	UserDirectory        string
	UserServiceHost      string
	UserServiceBasicAuth string
	UserServiceRetries   int
	UserServiceTimeout   time.Duration

	// NotificationBroker one of kafka, rabbitmq, none
	NotificationBroker  string
	InvitationTopic     string
	AppBaseURL          string
	NotificationTimeout time.Duration

	// WeddingCacheTTL zero disable wedding cache
	WeddingCacheTTL time.Duration
}

var env Environment

// GetEnv get global additional environment
func GetEnv() Environment {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Environment) {
	env = newEnv
}

func loadAdditionalEnv() {
	mErrs := candihelper.NewMultiError()
	var err error

	env.CollaboratorStore = strings.ToLower(os.Getenv("COLLABORATOR_STORE"))
	switch env.CollaboratorStore {
	case "":
		env.CollaboratorStore = StoreMongo
	case StoreMongo, StorePostgres, StoreMemory:
	default:
		mErrs.Append("COLLABORATOR_STORE", errors.New("must be one of mongo, postgres, memory"))
	}

	env.UserDirectory = strings.ToLower(os.Getenv("USER_DIRECTORY"))
	switch env.UserDirectory {
	case "":
		env.UserDirectory = "mongo"
	case "mongo":
	case "http":
		env.UserServiceHost = strings.TrimSuffix(os.Getenv("USER_SERVICE_HOST"), "/")
		if env.UserServiceHost == "" {
			mErrs.Append("USER_SERVICE_HOST", errors.New("missing USER_SERVICE_HOST environment for http user directory"))
		}
		env.UserServiceBasicAuth = os.Getenv("USER_SERVICE_BASIC_AUTH")
	default:
		mErrs.Append("USER_DIRECTORY", errors.New("must be one of mongo, http"))
	}
	if env.UserServiceRetries, err = strconv.Atoi(os.Getenv("USER_SERVICE_RETRIES")); err != nil || env.UserServiceRetries < 0 {
		env.UserServiceRetries = 3
	}
	env.UserServiceTimeout = parseDuration(os.Getenv("USER_SERVICE_TIMEOUT"), 5*time.Second)

	env.NotificationBroker = strings.ToLower(os.Getenv("NOTIFICATION_BROKER"))
	switch env.NotificationBroker {
	case "":
		env.NotificationBroker = "none"
	case "none", "kafka", "rabbitmq":
	default:
		mErrs.Append("NOTIFICATION_BROKER", errors.New("must be one of kafka, rabbitmq, none"))
	}
	env.InvitationTopic = os.Getenv("INVITATION_TOPIC")
	if env.InvitationTopic == "" {
		env.InvitationTopic = "wedding-invitation"
	}
	env.AppBaseURL = strings.TrimSuffix(os.Getenv("APP_BASE_URL"), "/")
	env.NotificationTimeout = parseDuration(os.Getenv("NOTIFICATION_TIMEOUT"), 10*time.Second)
	env.WeddingCacheTTL = parseDuration(os.Getenv("WEDDING_CACHE_TTL"), 0)

	if mErrs.HasError() {
		panic("Additional environment error: \n" + mErrs.Error())
	}
}

func parseDuration(str string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(str)
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}
