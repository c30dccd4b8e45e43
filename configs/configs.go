package configs

import (
	"context"
	"fmt"

	"github.com/golangid/wedding-collab/broker"
	"github.com/golangid/wedding-collab/candiutils"
	"github.com/golangid/wedding-collab/codebase/factory/dependency"
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/config"
	"github.com/golangid/wedding-collab/config/database"
	baseenv "github.com/golangid/wedding-collab/config/env"
	collaboratorrepo "github.com/golangid/wedding-collab/internal/modules/collaborator/repository"
	"github.com/golangid/wedding-collab/logger"
	"github.com/golangid/wedding-collab/middleware"
	"github.com/golangid/wedding-collab/pkg/shared/notification"
	"github.com/golangid/wedding-collab/pkg/shared/repository"
	"github.com/golangid/wedding-collab/tracer"
	"github.com/golangid/wedding-collab/validator"
)

// LoadConfigs load selected dependency configuration in this service
func LoadConfigs(baseCfg *config.Config) (deps dependency.Dependency) {

	loadAdditionalEnv()
	logger.InitZap()

	if host := baseenv.BaseEnv().JaegerTracingHost; host != "" {
		if err := tracer.InitOpenTracing(baseenv.BaseEnv().ServiceName,
			tracer.OptionSetAgentHost(host),
			tracer.OptionSetLevel(baseenv.BaseEnv().Environment),
			tracer.OptionSetBuildNumberTag(baseenv.BaseEnv().BuildNumber),
			tracer.OptionSetMaxGoroutineTag(baseenv.BaseEnv().MaxGoroutines),
			tracer.OptionSetMaxPacketSize(baseenv.BaseEnv().JaegerMaxPacketSize),
		); err != nil {
			logger.LogYellow("Tracer: " + err.Error())
		}
	}

	baseCfg.LoadFunc(func(ctx context.Context) []interfaces.Closer {
		mongoDeps := database.InitMongoDB(ctx)
		closers := []interfaces.Closer{mongoDeps}

		var sqlDeps interfaces.SQLDatabase
		if env.CollaboratorStore == StorePostgres {
			sqlDeps = database.InitSQLDatabase()
			closers = append(closers, sqlDeps)
		}
		var redisDeps interfaces.RedisPool
		if env.WeddingCacheTTL > 0 {
			redisDeps = database.InitRedis()
			closers = append(closers, redisDeps)
		}

		brokerDeps := initBrokers()
		for _, bk := range brokerDeps.GetBrokers() {
			closers = append(closers, bk)
		}

		collaboratorRepo, err := newCollaboratorRepo(ctx, mongoDeps, sqlDeps)
		if err != nil {
			panic(err)
		}
		repository.SetSharedRepository(repository.NewRepository(
			collaboratorRepo,
			newWeddingRepo(mongoDeps, redisDeps),
			newUserRepo(mongoDeps),
		))

		opts := []dependency.Option{
			dependency.SetMiddleware(middleware.NewMiddleware()),
			dependency.SetValidator(validator.NewValidator()),
			dependency.SetBrokers(brokerDeps.GetBrokers()),
			dependency.SetMongoDatabase(mongoDeps),
		}
		if sqlDeps != nil {
			opts = append(opts, dependency.SetSQLDatabase(sqlDeps))
		}
		if redisDeps != nil {
			opts = append(opts, dependency.SetRedisPool(redisDeps))
		}

		// inject all service dependencies
		// See all option in dependency package
		deps = dependency.InitDependency(opts...)
		deps.AddExtended(notification.DependencyKey, newInvitationSender(deps))
		return closers
	})

	return deps
}

func initBrokers() *broker.Broker {
	switch env.NotificationBroker {
	case "kafka":
		return broker.InitBrokers(broker.NewKafkaBroker())
	case "rabbitmq":
		return broker.InitBrokers(broker.NewRabbitMQBroker())
	}
	return broker.InitBrokers()
}

func newCollaboratorRepo(ctx context.Context, mongoDeps interfaces.MongoDatabase, sqlDeps interfaces.SQLDatabase) (collaboratorrepo.CollaboratorRepository, error) {
	switch env.CollaboratorStore {
	case StoreMemory:
		logger.LogYellow("Collaborator store: in memory, records are lost on restart")
		return collaboratorrepo.NewCollaboratorRepoInMem(), nil

	case StorePostgres:
		if sqlDeps == nil {
			return nil, fmt.Errorf("collaborator store %s: sql database is not loaded", env.CollaboratorStore)
		}
		if err := collaboratorrepo.EnsureCollaboratorSchema(ctx, sqlDeps.WriteDB()); err != nil {
			return nil, err
		}
		return collaboratorrepo.NewCollaboratorRepoSQL(sqlDeps.ReadDB(), sqlDeps.WriteDB()), nil

	default:
		if mongoDeps == nil {
			return nil, fmt.Errorf("collaborator store %s: mongo database is not loaded", env.CollaboratorStore)
		}
		if err := collaboratorrepo.EnsureCollaboratorIndexes(ctx, mongoDeps.WriteDB()); err != nil {
			return nil, err
		}
		return collaboratorrepo.NewCollaboratorRepoMongo(mongoDeps.ReadDB(), mongoDeps.WriteDB()), nil
	}
}

func newWeddingRepo(mongoDeps interfaces.MongoDatabase, redisDeps interfaces.RedisPool) repository.WeddingRepository {
	weddingRepo := repository.NewWeddingRepoMongo(mongoDeps.ReadDB())
	if redisDeps == nil || env.WeddingCacheTTL <= 0 {
		return weddingRepo
	}
	return repository.NewWeddingRepoCache(weddingRepo, redisDeps.Cache(), env.WeddingCacheTTL)
}

func newUserRepo(mongoDeps interfaces.MongoDatabase) repository.UserRepository {
	if env.UserDirectory == "http" {
		return repository.NewUserRepoHTTP(env.UserServiceHost, env.UserServiceBasicAuth, candiutils.NewHTTPRequest(
			candiutils.HTTPRequestSetRetries(env.UserServiceRetries),
			candiutils.HTTPRequestSetTimeout(env.UserServiceTimeout),
		))
	}
	return repository.NewUserRepoMongo(mongoDeps.ReadDB())
}

// newInvitationSender publish invitation through the configured broker, fallback to noop sender
func newInvitationSender(deps dependency.Dependency) notification.InvitationSender {
	var bk interfaces.Broker
	switch env.NotificationBroker {
	case "kafka":
		bk = deps.GetBroker(types.Kafka)
	case "rabbitmq":
		bk = deps.GetBroker(types.RabbitMQ)
	}
	if bk == nil || bk.GetPublisher() == nil {
		return notification.NewNoopSender()
	}
	return notification.NewPublisherSender(bk.GetPublisher(), env.InvitationTopic, env.AppBaseURL)
}
