package interfaces

import (
	"context"

	"github.com/golangid/wedding-collab/candishared"
)

// Publisher abstract interface
type Publisher interface {
	PublishMessage(ctx context.Context, args *candishared.PublisherArgument) (err error)
}
