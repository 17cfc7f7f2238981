package host

// Event names published by the core and its components.
const (
	EventPlayerConnect    = "player_connect"
	EventPlayerDisconnect = "player_disconnect"
	EventTextVetoed       = "text_vetoed"
	EventPacketRejected   = "packet_rejected"
	EventRPCRejected      = "rpc_rejected"
	EventNPCCreate        = "npc_create"
	EventNPCDestroy       = "npc_destroy"
	EventComponentInit    = "component_init"
	EventComponentFree    = "component_free"
)

// Event represents a core lifecycle event.
// Minimal and stable: name + player slot and optional fields via key/values.
// PlayerID is -1 for events not tied to a player.
type Event struct {
	Name     string         `json:"name"`
	PlayerID int            `json:"player_id"`
	Fields   map[string]any `json:"fields,omitempty"`
}

// EventPublisher receives events from the core. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// PublisherFunc adapts a function to EventPublisher. Only pointers to
// PublisherFunc can be registered, since func values are not comparable.
type PublisherFunc func(Event)

func (f *PublisherFunc) Publish(e Event) { (*f)(e) }

func (c *Core) publish(name string, playerID int, fields map[string]any) {
	e := Event{Name: name, PlayerID: playerID, Fields: fields}
	c.publishers.Dispatch(func(p EventPublisher) { p.Publish(e) })
}
