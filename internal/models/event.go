package models

// Event represents a catalog change event published to Kafka after a
// successful mutation.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the mutation occurred.
	Entity    string `json:"entity"`    // Entity names the resource kind, e.g. "book" or "book_pdf".
	Action    string `json:"action"`    // Action describes the mutation, e.g. "created", "updated" or "deleted".
	EntityID  string `json:"entity_id"` // EntityID is the identifier of the mutated resource.
	ActorID   string `json:"actor_id"`  // ActorID is the identifier of the user who performed the mutation.
}
