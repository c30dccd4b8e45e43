package dependency

import (
	"context"
	"errors"
	"testing"

	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/stretchr/testify/assert"
)

type fakeBroker struct {
	errDisconnect error
}

func (f *fakeBroker) GetPublisher() interfaces.Publisher { return nil }
func (f *fakeBroker) GetName() types.Worker              { return types.Kafka }
func (f *fakeBroker) Health() map[string]error           { return nil }
func (f *fakeBroker) Disconnect(context.Context) error   { return f.errDisconnect }

func TestInitDependency(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		d := InitDependency(
			SetBrokers(map[types.Worker]interfaces.Broker{types.Kafka: &fakeBroker{}}),
			SetExtended(map[string]interface{}{"key": "value"}),
		)
		assert.NotNil(t, d.GetBroker(types.Kafka))
		assert.Nil(t, d.GetBroker(types.RabbitMQ))
		assert.Equal(t, "value", d.GetExtended("key"))
		assert.Nil(t, d.GetMongoDatabase())

		d.AddExtended("other", 1)
		assert.Equal(t, 1, d.GetExtended("other"))
		assert.NoError(t, d.Disconnect(context.Background()))
	})

	t.Run("Testcase #2: Negative, disconnect error", func(t *testing.T) {
		d := InitDependency()
		d.AddBroker(types.RabbitMQ, &fakeBroker{errDisconnect: errors.New("closed")})
		err := d.Disconnect(context.Background())
		assert.EqualError(t, err, "rabbit_mq: closed")
	})
}
