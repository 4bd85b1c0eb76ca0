package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/IBM/sarama"
)

// MessageHandler processes one consumed message. Returning mark=false
// or a non-nil error leaves the offset unmarked so the message is
// redelivered.
type MessageHandler interface {
	HandleMessage(ctx context.Context, message []byte) (mark bool, err error)
}

// JSONHandler adapts a typed validate/process pair to MessageHandler.
// Messages that fail to decode or validate are marked and skipped;
// only processing errors hold the offset back for retry.
func JSONHandler[T any](validate func(*T) bool, process func(context.Context, *T) error) MessageHandler {
	return jsonHandler[T]{validate: validate, process: process}
}

type jsonHandler[T any] struct {
	validate func(*T) bool
	process  func(context.Context, *T) error
}

func (h jsonHandler[T]) HandleMessage(ctx context.Context, message []byte) (bool, error) {
	var msg T
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Printf("Dropping malformed message: %v", err)
		return true, nil
	}
	if h.validate != nil && !h.validate(&msg) {
		return true, nil
	}
	if err := h.process(ctx, &msg); err != nil {
		return false, err
	}
	return true, nil
}

// ConsumerConfig holds the consumer group wiring.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	Handler MessageHandler
}

// Consumer reads one topic through a consumer group and feeds every
// message to the configured handler.
type Consumer struct {
	group   sarama.ConsumerGroup
	handler MessageHandler
	topic   string
	groupID string
	ready   chan struct{}
}

// NewConsumer creates a consumer group client. Offsets start at the
// oldest message so a fresh group works through the backlog.
func NewConsumer(config ConsumerConfig) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		handler: config.Handler,
		topic:   config.Topic,
		groupID: config.GroupID,
		ready:   make(chan struct{}),
	}, nil
}

// Start runs the consume loop in the background and returns once the
// first session is set up. The loop re-joins after every rebalance
// until ctx is canceled.
func (c *Consumer) Start(ctx context.Context) error {
	h := &groupHandler{handler: c.handler, ready: c.ready}

	go func() {
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
				if err == context.Canceled {
					return
				}
				log.Printf("Consume error: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
			h.ready = make(chan struct{})
		}
	}()

	<-c.ready
	log.Printf("Kafka consumer ready (group %s, topic %s)", c.groupID, c.topic)

	go func() {
		for err := range c.group.Errors() {
			log.Printf("Kafka consumer error: %v", err)
		}
	}()

	return nil
}

// Close shuts down the consumer group.
func (c *Consumer) Close() error {
	return c.group.Close()
}

// groupHandler implements sarama.ConsumerGroupHandler.
type groupHandler struct {
	handler MessageHandler
	ready   chan struct{}
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	close(h.ready)
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			mark, err := h.handler.HandleMessage(session.Context(), msg.Value)
			if err != nil {
				log.Printf("Message %s at %d/%d failed: %v", string(msg.Key), msg.Partition, msg.Offset, err)
			}
			if mark {
				session.MarkMessage(msg, "")
			}
		case <-session.Context().Done():
			return nil
		}
	}
}
