package host

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"eventhost/pkg/dispatch"
	"eventhost/pkg/types"
)

// NPCComponentName is the name under which the NPC component is loaded.
const NPCComponentName = "npcs"

// NPC is a bot player owned by the NPC component.
type NPC struct {
	player *Player
	uptime time.Duration
}

func (n *NPC) ID() int { return n.player.ID }
func (n *NPC) Name() string { return n.player.Name }
func (n *NPC) Player() *Player { return n.player }
func (n *NPC) Uptime() time.Duration { return n.uptime }

// Info converts the NPC to its API representation.
func (n *NPC) Info() types.NPCInfo {
	return types.NPCInfo{ID: n.ID(), Name: n.Name(), UptimeMS: n.uptime.Milliseconds()}
}

// NPCComponent creates and releases bot players. It listens for player
// disconnects so an NPC kicked through the core is dropped from its storage,
// and ticks every NPC it owns.
type NPCComponent struct {
	PlayerEventHandlerBase

	core   *Core
	npcs   map[int]*NPC
	events dispatch.Dispatcher[NPCEventHandler]
}

func NewNPCComponent() *NPCComponent {
	return &NPCComponent{npcs: make(map[int]*NPC)}
}

func (n *NPCComponent) Name() string { return NPCComponentName }

func (n *NPCComponent) OnLoad(c *Core) { n.core = c }

func (n *NPCComponent) OnInit(c *Core) {
	c.PlayerEvents().AddHandler(n)
	c.TickEvents().AddHandler(n)
}

// Free releases every remaining NPC and unregisters from the core.
func (n *NPCComponent) Free() {
	for _, npc := range n.List() {
		_ = n.Release(npc.ID())
	}
	n.core.PlayerEvents().RemoveHandler(n)
	n.core.TickEvents().RemoveHandler(n)
}

// NPCEvents returns the registry for NPC lifecycle handlers.
func (n *NPCComponent) NPCEvents() dispatch.Registry[NPCEventHandler] { return &n.events }

// Create connects a bot player and announces it as an NPC.
func (n *NPCComponent) Create(name string) (*NPC, error) {
	p, err := n.core.Connect(name, true)
	if err != nil {
		return nil, err
	}
	npc := &NPC{player: p}
	n.npcs[p.ID] = npc
	n.events.Dispatch(func(h NPCEventHandler) { h.OnNPCCreate(npc) })
	n.core.publish(EventNPCCreate, p.ID, map[string]any{"name": p.Name})
	return npc, nil
}

// Release disconnects the NPC in slot id.
func (n *NPCComponent) Release(id int) error {
	npc, ok := n.npcs[id]
	if !ok {
		return notNPCError{id: id}
	}
	// Drop from storage first so OnPlayerDisconnect does not treat this as an
	// external disconnect.
	delete(n.npcs, id)
	n.events.Dispatch(func(h NPCEventHandler) { h.OnNPCDisconnect(npc) })
	if err := n.core.Disconnect(id, ReasonQuit); err != nil {
		return err
	}
	n.destroyed(npc)
	return nil
}

// Get returns the NPC in slot id, or nil.
func (n *NPCComponent) Get(id int) *NPC { return n.npcs[id] }

// List returns the NPCs ordered by slot.
func (n *NPCComponent) List() []*NPC {
	out := lo.Values(n.npcs)
	slices.SortFunc(out, func(a, b *NPC) int { return a.ID() - b.ID() })
	return out
}

func (n *NPCComponent) OnPlayerDisconnect(p *Player, _ DisconnectReason) {
	npc, ok := n.npcs[p.ID]
	if !ok || npc.player != p {
		return
	}
	delete(n.npcs, p.ID)
	n.events.Dispatch(func(h NPCEventHandler) { h.OnNPCDisconnect(npc) })
	n.destroyed(npc)
}

func (n *NPCComponent) OnTick(elapsed time.Duration, _ time.Time) {
	for _, npc := range n.npcs {
		npc.uptime += elapsed
	}
}

func (n *NPCComponent) destroyed(npc *NPC) {
	n.events.Dispatch(func(h NPCEventHandler) { h.OnNPCDestroy(npc) })
	n.core.publish(EventNPCDestroy, npc.ID(), map[string]any{"name": npc.Name()})
}
