package host

import (
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultMaxPlayers   = 100
	defaultPacketSlots  = 256
	defaultRPCSlots     = 256
	DefaultChatPacketID = 1
)

// Config encapsulates all tunables for Core construction.
type Config struct {
	MaxPlayers  int
	PacketSlots int
	RPCSlots    int
	Logger      *zerolog.Logger
	// Clock is used for connect times and tick timestamps; time.Now when nil.
	Clock func() time.Time
}

func (c Config) withDefaults() Config {
	if c.MaxPlayers <= 0 {
		c.MaxPlayers = defaultMaxPlayers
	}
	if c.PacketSlots <= 0 {
		c.PacketSlots = defaultPacketSlots
	}
	if c.RPCSlots <= 0 {
		c.RPCSlots = defaultRPCSlots
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}
