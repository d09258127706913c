package service

import (
	"context"
	"encoding/json"
	"log"

	"groupdine/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer drains the recommendations topic and queues a booking task for
// every completed session, so the booking/call system can pick them up.
type Consumer struct {
	Reader *kafka.Reader
	Store  BookingStore
}

func NewConsumer(reader *kafka.Reader, store BookingStore) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting booking dispatch consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == "recommendations_ready" {
			c.ProcessReady(msg)
		}
	}
}

func (c *Consumer) ProcessReady(msg domain.KafkaMessage) {
	if msg.Type != "recommendations_ready" {
		return
	}
	log.Printf("Recommendations ready: EventID=%s, SessionID=%s, Count=%d",
		msg.EventID, msg.SessionID, msg.Recommendations)

	if msg.Recommendations == 0 {
		// Nothing to book; an empty session is a valid outcome, not an error.
		log.Printf("No recommendations for event %s, skipping booking task", msg.EventID)
		return
	}

	if err := c.Store.EnqueueBookingTask(msg.EventID, msg.SessionID); err != nil {
		log.Printf("Error queueing booking task: %v", err)
		return
	}

	log.Printf("Queued booking task for event %s", msg.EventID)
}
