package host

import "time"

// PlayerEventHandler receives player lifecycle events. OnPlayerText returns
// false to stop the text from being delivered.
type PlayerEventHandler interface {
	OnPlayerConnect(p *Player)
	OnPlayerDisconnect(p *Player, reason DisconnectReason)
	OnPlayerText(p *Player, text string) bool
}

// PlayerEventHandlerBase provides no-op defaults; embed it and override only
// the events of interest.
type PlayerEventHandlerBase struct{}

func (PlayerEventHandlerBase) OnPlayerConnect(*Player) {}
func (PlayerEventHandlerBase) OnPlayerDisconnect(*Player, DisconnectReason) {}
func (PlayerEventHandlerBase) OnPlayerText(*Player, string) bool { return true }

// TickHandler is invoked once per core tick.
type TickHandler interface {
	OnTick(elapsed time.Duration, now time.Time)
}

// PacketHandler is registered for a single packet id. Returning false rejects
// the packet.
type PacketHandler interface {
	OnPacket(p *Player, data []byte) bool
}

// PacketInHandler sees every incoming packet before the handlers registered
// for its id. Returning false drops the packet.
type PacketInHandler interface {
	OnReceivePacket(p *Player, packetID int, data []byte) bool
}

// RPCInHandler sees every incoming RPC before the handlers registered for its
// id. Returning false drops the RPC.
type RPCInHandler interface {
	OnReceiveRPC(p *Player, rpcID int, data []byte) bool
}

// RPCHandler is registered for a single RPC id. Returning false rejects the
// RPC.
type RPCHandler interface {
	OnRPC(p *Player, data []byte) bool
}

// NPCEventHandler receives NPC lifecycle events from the NPC component.
type NPCEventHandler interface {
	OnNPCCreate(n *NPC)
	OnNPCDisconnect(n *NPC)
	OnNPCDestroy(n *NPC)
}
