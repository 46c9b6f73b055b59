package dto

// ActivityMessage is published on the in-process bus after authenticated
// operations so the consumer can refresh users.last_active.
type ActivityMessage struct {
	UserId     string `json:"user_id"`
	OccurredAt string `json:"occurred_at"`
}
