package host

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"eventhost/pkg/dispatch"
	"eventhost/pkg/types"
)

// Component is a unit of server functionality loaded into the Core.
// OnLoad runs for every component before any OnInit, so components can look
// each other up during OnInit. Free runs in reverse load order on Shutdown.
type Component interface {
	Name() string
	OnLoad(c *Core)
	OnInit(c *Core)
	Free()
}

// Core owns the player pool and the event dispatchers. It is not safe for
// concurrent use; see Server.
type Core struct {
	log   zerolog.Logger
	clock func() time.Time

	players []*Player
	count   int

	playerEvents dispatch.Dispatcher[PlayerEventHandler]
	tickEvents   dispatch.Dispatcher[TickHandler]
	packetEvents *dispatch.IndexedDispatcher[PacketHandler]
	rpcEvents    *dispatch.IndexedDispatcher[RPCHandler]
	publishers   dispatch.Dispatcher[EventPublisher]

	packetInEvents dispatch.Dispatcher[PacketInHandler]
	rpcInEvents    dispatch.Dispatcher[RPCInHandler]

	components []Component
	ready      bool
}

// New constructs a Core from Config, applying defaults for unset fields.
func New(cfg Config) *Core {
	cfg = cfg.withDefaults()
	return &Core{
		log:          cfg.Logger.With().Str("component", "core").Logger(),
		clock:        cfg.Clock,
		players:      make([]*Player, cfg.MaxPlayers),
		packetEvents: dispatch.NewIndexed[PacketHandler](cfg.PacketSlots),
		rpcEvents:    dispatch.NewIndexed[RPCHandler](cfg.RPCSlots),
	}
}

// PlayerEvents returns the registry for player lifecycle handlers.
func (c *Core) PlayerEvents() dispatch.Registry[PlayerEventHandler] { return &c.playerEvents }

// TickEvents returns the registry for tick handlers.
func (c *Core) TickEvents() dispatch.Registry[TickHandler] { return &c.tickEvents }

// PacketEvents returns the per-packet-id registry.
func (c *Core) PacketEvents() dispatch.IndexedRegistry[PacketHandler] { return c.packetEvents }

// PacketInEvents returns the registry for handlers that see every packet
// before the per-id handlers.
func (c *Core) PacketInEvents() dispatch.Registry[PacketInHandler] { return &c.packetInEvents }

// RPCEvents returns the per-RPC-id registry.
func (c *Core) RPCEvents() dispatch.IndexedRegistry[RPCHandler] { return c.rpcEvents }

// RPCInEvents returns the registry for handlers that see every RPC before the
// per-id handlers.
func (c *Core) RPCInEvents() dispatch.Registry[RPCInHandler] { return &c.rpcInEvents }

// AddEventPublisher registers p for lifecycle events. A nil publisher is
// rejected.
func (c *Core) AddEventPublisher(p EventPublisher) bool {
	if p == nil {
		return false
	}
	return c.publishers.AddHandler(p)
}

// RemoveEventPublisher unregisters p.
func (c *Core) RemoveEventPublisher(p EventPublisher) bool { return c.publishers.RemoveHandler(p) }

// Logger returns the core logger for components.
func (c *Core) Logger() zerolog.Logger { return c.log }

// Now returns the core clock time.
func (c *Core) Now() time.Time { return c.clock() }

// AddComponent appends comp to the load order. Components added after Init
// are not initialized.
func (c *Core) AddComponent(comp Component) {
	c.components = append(c.components, comp)
}

// Component returns the loaded component with the given name, or nil.
func (c *Core) Component(name string) Component {
	for _, comp := range c.components {
		if comp.Name() == name {
			return comp
		}
	}
	return nil
}

// Components returns component names in load order.
func (c *Core) Components() []string {
	out := make([]string, len(c.components))
	for i, comp := range c.components {
		out[i] = comp.Name()
	}
	return out
}

// Init loads and initializes every component. Calling Init twice is a no-op.
func (c *Core) Init() {
	if c.ready {
		return
	}
	for _, comp := range c.components {
		comp.OnLoad(c)
	}
	for _, comp := range c.components {
		comp.OnInit(c)
		c.log.Info().Str("name", comp.Name()).Msg("component initialized")
		c.publish(EventComponentInit, -1, map[string]any{"component": comp.Name()})
	}
	c.ready = true
}

// Shutdown frees components in reverse order and disconnects remaining players.
func (c *Core) Shutdown() {
	if !c.ready {
		return
	}
	for i := len(c.components) - 1; i >= 0; i-- {
		comp := c.components[i]
		comp.Free()
		c.log.Info().Str("name", comp.Name()).Msg("component freed")
		c.publish(EventComponentFree, -1, map[string]any{"component": comp.Name()})
	}
	for _, p := range c.Players() {
		_ = c.Disconnect(p.ID, ReasonQuit)
	}
	c.ready = false
}

// Ready reports whether Init has completed and Shutdown has not run.
func (c *Core) Ready() bool { return c.ready }

// MaxPlayers returns the pool size.
func (c *Core) MaxPlayers() int { return len(c.players) }

// PlayerCount returns the number of connected players.
func (c *Core) PlayerCount() int { return c.count }

// Player returns the player in slot id, or nil.
func (c *Core) Player(id int) *Player {
	if id < 0 || id >= len(c.players) {
		return nil
	}
	return c.players[id]
}

// Players returns connected players ordered by slot.
func (c *Core) Players() []*Player {
	out := make([]*Player, 0, c.count)
	for _, p := range c.players {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Connect places a new player in the lowest free slot and notifies handlers.
func (c *Core) Connect(name string, bot bool) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidNameError{}
	}
	id := -1
	for i, p := range c.players {
		if p == nil {
			id = i
			break
		}
	}
	if id < 0 {
		return nil, poolFullError{max: len(c.players)}
	}
	p := &Player{
		ID:          id,
		Session:     uuid.New(),
		Name:        name,
		Bot:         bot,
		ConnectedAt: c.clock(),
	}
	c.players[id] = p
	c.count++
	c.playerEvents.Dispatch(func(h PlayerEventHandler) { h.OnPlayerConnect(p) })
	c.publish(EventPlayerConnect, id, map[string]any{"name": name, "bot": bot})
	return p, nil
}

// Disconnect notifies handlers and frees the player's slot. Handlers see the
// player while it still occupies its slot.
func (c *Core) Disconnect(id int, reason DisconnectReason) error {
	p := c.Player(id)
	if p == nil {
		return playerNotFoundError{id: id}
	}
	c.playerEvents.Dispatch(func(h PlayerEventHandler) { h.OnPlayerDisconnect(p, reason) })
	c.players[id] = nil
	c.count--
	c.publish(EventPlayerDisconnect, id, map[string]any{"reason": reason.String(), "bot": p.Bot})
	return nil
}

// SendText offers text from player id to every player handler and reports
// whether none of them vetoed it.
func (c *Core) SendText(id int, text string) (bool, error) {
	p := c.Player(id)
	if p == nil {
		return false, playerNotFoundError{id: id}
	}
	ok := c.playerEvents.AllTrue(func(h PlayerEventHandler) bool { return h.OnPlayerText(p, text) })
	if !ok {
		c.publish(EventTextVetoed, id, nil)
	}
	return ok, nil
}

// ReceivePacket offers a packet from player id first to the packet-in
// handlers and, if none of them dropped it, to the handlers registered for
// packetID. It reports whether the packet was accepted. An id outside the
// configured slot count is an error rather than a silently accepted packet.
func (c *Core) ReceivePacket(id, packetID int, data []byte) (bool, error) {
	p := c.Player(id)
	if p == nil {
		return false, playerNotFoundError{id: id}
	}
	if !c.packetEvents.InRange(packetID) {
		return false, packetOutOfRangeError{id: packetID, count: c.packetEvents.Count()}
	}
	ok := c.packetInEvents.AllTrue(func(h PacketInHandler) bool { return h.OnReceivePacket(p, packetID, data) }) &&
		c.packetEvents.AllTrue(packetID, func(h PacketHandler) bool { return h.OnPacket(p, data) })
	if !ok {
		c.log.Debug().Int("player_id", id).Int("packet_id", packetID).Msg("packet rejected")
		c.publish(EventPacketRejected, id, map[string]any{"packet_id": packetID})
	}
	return ok, nil
}

// ReceiveRPC is ReceivePacket for RPCs: RPC-in handlers run first, then the
// handlers registered for rpcID.
func (c *Core) ReceiveRPC(id, rpcID int, data []byte) (bool, error) {
	p := c.Player(id)
	if p == nil {
		return false, playerNotFoundError{id: id}
	}
	if !c.rpcEvents.InRange(rpcID) {
		return false, rpcOutOfRangeError{id: rpcID, count: c.rpcEvents.Count()}
	}
	ok := c.rpcInEvents.AllTrue(func(h RPCInHandler) bool { return h.OnReceiveRPC(p, rpcID, data) }) &&
		c.rpcEvents.AllTrue(rpcID, func(h RPCHandler) bool { return h.OnRPC(p, data) })
	if !ok {
		c.log.Debug().Int("player_id", id).Int("rpc_id", rpcID).Msg("rpc rejected")
		c.publish(EventRPCRejected, id, map[string]any{"rpc_id": rpcID})
	}
	return ok, nil
}

// Tick advances every tick handler.
func (c *Core) Tick(elapsed time.Duration) {
	now := c.clock()
	c.tickEvents.Dispatch(func(h TickHandler) { h.OnTick(elapsed, now) })
}

// Snapshot builds the status view.
func (c *Core) Snapshot() types.StatusResponse {
	resp := types.StatusResponse{
		Ready:      c.ready,
		Players:    c.count,
		MaxPlayers: len(c.players),
		Components: c.Components(),
		Dispatchers: []types.DispatcherStatus{
			{Name: "player", Handlers: c.playerEvents.Len()},
			{Name: "tick", Handlers: c.tickEvents.Len()},
			{Name: "packet_in", Handlers: c.packetInEvents.Len()},
			{Name: "packet", Handlers: c.packetEvents.Total(), Slots: c.packetEvents.Count()},
			{Name: "rpc_in", Handlers: c.rpcInEvents.Len()},
			{Name: "rpc", Handlers: c.rpcEvents.Total(), Slots: c.rpcEvents.Count()},
			{Name: "publisher", Handlers: c.publishers.Len()},
		},
	}
	for _, p := range c.players {
		if p != nil && p.Bot {
			resp.NPCs++
		}
	}
	return resp
}
