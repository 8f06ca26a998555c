package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocketstore/backend/internal/mykafka"
)

// publishEvent sends a domain event to Kafka. A nil producer means events
// are disabled (local runs, tests) and the call is a no-op. Delivery
// failures are logged, never surfaced to the client.
func publishEvent(c echo.Context, producer *mykafka.Producer, topic string, event map[string]any) {
	if producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := producer.PublishEvent(ctx, topic, fmt.Sprint(event["userID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
