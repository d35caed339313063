package kafka

import (
	"github.com/segmentio/kafka-go"
)

type Writer = kafka.Writer

// NewWriter builds a producer for a single topic. Topics are auto-created
// in local environments.
func NewWriter(brokers string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
