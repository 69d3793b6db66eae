package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// metaKeyTopic carries Message.Topic through watermill's metadata.
const metaKeyTopic = "topic"

// WatermillBridge implements Publisher and Subscriber on an in-process
// watermill GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
}

// BridgeOption configures a WatermillBridge.
type BridgeOption func(*WatermillBridge)

// WithTracer traces every publish and every delivery with tracer.
func WithTracer(tracer trace.Tracer) BridgeOption {
	return func(wb *WatermillBridge) { wb.tracer = tracer }
}

// NewWatermillBridge creates an in-memory bus. Publishing never blocks on
// slow subscribers.
func NewWatermillBridge(opts ...BridgeOption) *WatermillBridge {
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)

	wb := &WatermillBridge{
		pub: goChannel,
		sub: goChannel,
	}
	for _, opt := range opts {
		opt(wb)
	}
	if wb.tracer != nil {
		wb.pub = &tracingPublisher{Publisher: goChannel, tracer: wb.tracer}
	}
	return wb
}

func toWatermill(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements Publisher.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := toWatermill(msg)
	wmMsg.SetContext(ctx)
	return wb.pub.Publish(msg.Topic, wmMsg)
}

// Subscribe implements Subscriber. Handler errors are logged and the message
// is nacked; the in-memory bus does not redeliver.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			if err := wb.process(topic, wmMsg, handler); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				wmMsg.Nack()
				continue
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

func (wb *WatermillBridge) process(topic string, wmMsg *message.Message, handler Handler) error {
	if wb.tracer == nil {
		return handler(wmMsg.Context(), fromWatermill(wmMsg))
	}

	ctx, span := startProcessSpan(wb.tracer, topic, wmMsg)
	defer span.End()
	err := handler(ctx, fromWatermill(wmMsg))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Close shuts the bus down and ends all subscriptions.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}
