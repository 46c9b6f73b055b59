package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mindvault-be/internal/dto"

	"github.com/google/uuid"
)

// publishActivity drops a message on the in-process bus so the consumer can
// refresh users.last_active. Best effort, failures are only logged.
func publishActivity(ctx context.Context, publisher IPublisherService, userId uuid.UUID) {
	if publisher == nil {
		return
	}
	payload, err := json.Marshal(dto.ActivityMessage{
		UserId:     userId.String(),
		OccurredAt: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if err := publisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish activity message: %v\n", err)
	}
}
