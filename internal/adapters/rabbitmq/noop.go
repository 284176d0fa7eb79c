package rabbitmq

import (
	"context"

	"github.com/rafaelleal24/ecommerce/internal/core/domain"
	"github.com/rafaelleal24/ecommerce/internal/core/logger"
	"github.com/rafaelleal24/ecommerce/internal/core/port"
)

// NoopBroker drops every event. Used when RabbitMQ is disabled.
type NoopBroker struct{}

var _ port.BrokerPort = NoopBroker{}

func NewNoopBroker() NoopBroker {
	return NoopBroker{}
}

func (NoopBroker) Publish(ctx context.Context, event domain.Event) error {
	logger.Debug(ctx, "rabbitmq disabled, dropping event", map[string]any{
		"event_name":  event.GetName(),
		"entity_name": event.GetEntityName(),
	})
	return nil
}

func (NoopBroker) Close() error { return nil }
