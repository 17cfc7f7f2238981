package host

import (
	"strings"

	"github.com/samber/lo"
)

// ChatFilterComponentName is the name under which the chat filter is loaded.
const ChatFilterComponentName = "chat"

// ChatFilter vetoes player text and chat packets containing banned words.
type ChatFilter struct {
	PlayerEventHandlerBase

	core     *Core
	banned   []string
	packetID int
	vetoed   int
}

// NewChatFilter returns a filter for the given words (case-insensitive). It
// also guards packet id packetID, or the default chat packet id when negative.
func NewChatFilter(packetID int, words ...string) *ChatFilter {
	if packetID < 0 {
		packetID = DefaultChatPacketID
	}
	banned := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, w != ""
	})
	return &ChatFilter{banned: lo.Uniq(banned), packetID: packetID}
}

func (f *ChatFilter) Name() string { return ChatFilterComponentName }

func (f *ChatFilter) OnLoad(c *Core) { f.core = c }

func (f *ChatFilter) OnInit(c *Core) {
	c.PlayerEvents().AddHandler(f)
	if !c.PacketEvents().AddHandler(f, f.packetID) {
		log := c.Logger()
		log.Warn().Int("packet_id", f.packetID).Msg("chat filter packet id not registered")
	}
}

func (f *ChatFilter) Free() {
	f.core.PlayerEvents().RemoveHandler(f)
	f.core.PacketEvents().RemoveHandler(f, f.packetID)
}

// Vetoed returns how many messages the filter rejected.
func (f *ChatFilter) Vetoed() int { return f.vetoed }

func (f *ChatFilter) OnPlayerText(_ *Player, text string) bool { return f.allow(text) }

func (f *ChatFilter) OnPacket(_ *Player, data []byte) bool { return f.allow(string(data)) }

func (f *ChatFilter) allow(text string) bool {
	lower := strings.ToLower(text)
	if lo.SomeBy(f.banned, func(w string) bool { return strings.Contains(lower, w) }) {
		f.vetoed++
		return false
	}
	return true
}
