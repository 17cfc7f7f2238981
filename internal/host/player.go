package host

import (
	"time"

	"github.com/google/uuid"

	"eventhost/pkg/types"
)

// DisconnectReason tells handlers why a player left.
type DisconnectReason int

const (
	ReasonTimeout DisconnectReason = iota
	ReasonQuit
	ReasonKicked
)

func (r DisconnectReason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonQuit:
		return "quit"
	case ReasonKicked:
		return "kicked"
	default:
		return "unknown"
	}
}

// Player is a connected client or bot occupying one pool slot. The Core owns
// Player values; handlers must not keep them past OnPlayerDisconnect.
type Player struct {
	ID          int
	Session     uuid.UUID
	Name        string
	Bot         bool
	ConnectedAt time.Time
}

// Info converts the player to its API representation.
func (p *Player) Info() types.PlayerInfo {
	return types.PlayerInfo{
		ID:            p.ID,
		Session:       p.Session.String(),
		Name:          p.Name,
		Bot:           p.Bot,
		ConnectedUnix: p.ConnectedAt.Unix(),
	}
}
