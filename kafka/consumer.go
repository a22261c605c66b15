package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/cocoatrail/festival-api/pkg/logger"
)

// EventHandler processes a favourite toggle event.
type EventHandler func(ctx context.Context, event FavouriteToggledEvent) error

// Consumer wraps a Kafka consumer group for the toggle topic.
type Consumer struct {
	group   sarama.ConsumerGroup
	groupID string
	topics  []string
	handler EventHandler
}

// NewConsumer creates a consumer group member for the given topics.
func NewConsumer(brokers []string, groupID string, handler EventHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Msg("Kafka consumer initialized")

	return &Consumer{
		group:   group,
		groupID: groupID,
		topics:  []string{TopicFavouriteToggled},
		handler: handler,
	}, nil
}

// Start begins consuming until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Logger.Info().Msg("Consumer context cancelled, stopping")
				return
			default:
				if err := c.group.Consume(ctx, c.topics, &groupHandler{consumer: c}); err != nil {
					logger.Logger.Error().Err(err).Msg("Error from consumer")
				}
			}
		}
	}()

	go func() {
		for err := range c.group.Errors() {
			logger.Logger.Error().Err(err).Msg("Consumer error")
		}
	}()
}

// Close shuts down the consumer group.
func (c *Consumer) Close() error {
	if c.group != nil {
		return c.group.Close()
	}
	return nil
}

type groupHandler struct {
	consumer *Consumer
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		h.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *groupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	carrier := propagation.MapCarrier{}
	for _, header := range message.Headers {
		key := string(header.Key)
		if key == "traceparent" || key == "tracestate" {
			carrier[key] = string(header.Value)
		}
	}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	tracer := otel.Tracer("kafka-consumer")
	ctx, span := tracer.Start(ctx, "kafka.consume.favourite_toggled",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", message.Topic),
			attribute.Int("messaging.kafka.partition", int(message.Partition)),
			attribute.Int64("messaging.kafka.offset", message.Offset),
		),
	)
	defer span.End()

	var event FavouriteToggledEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to unmarshal event")
		logger.Error(ctx).Err(err).Msg("Failed to unmarshal toggle event")
		return
	}

	if event.EventType != EventTypeFavouriteToggled {
		span.SetStatus(codes.Error, "Unknown event type")
		logger.Warn(ctx).Str("event_type", event.EventType).Msg("Unknown event type")
		return
	}

	span.SetAttributes(
		attribute.String("event.id", event.EventID),
		attribute.String("device.id", event.DeviceID),
		attribute.Int("flavour.id", event.FlavourID),
	)

	if err := h.consumer.handler(ctx, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to handle event")
		logger.Error(ctx).
			Err(err).
			Str("event_id", event.EventID).
			Msg("Failed to handle toggle event")
		return
	}

	span.SetStatus(codes.Ok, "Event handled")
}
