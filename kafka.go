package main

import (
	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
)

// newKafkaPublisher creates a synchronous Kafka publisher for order events.
func newKafkaPublisher(brokers []string, logger watermill.LoggerAdapter) (*kafka.Publisher, error) {
	saramaConfig := kafka.DefaultSaramaSyncPublisherConfig()
	saramaConfig.ClientID = "agrimarket"
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll

	return kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:               brokers,
		Marshaler:             kafka.DefaultMarshaler{},
		OverwriteSaramaConfig: saramaConfig,
	}, logger)
}

// addKafkaForwarder mirrors every in-process order event to the Kafka topic
// consumed by the fulfillment process.
func addKafkaForwarder(router *message.Router, subscriber message.Subscriber, brokers []string, logger watermill.LoggerAdapter) error {
	publisher, err := newKafkaPublisher(brokers, logger)
	if err != nil {
		return err
	}

	router.AddHandler(
		"ForwardOrderEventsToKafka",
		orderEventsTopic,
		subscriber,
		orderEventsTopic,
		publisher,
		func(msg *message.Message) ([]*message.Message, error) {
			return []*message.Message{msg}, nil
		},
	)
	return nil
}
