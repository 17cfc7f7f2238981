package host

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// recorder logs player and NPC events in order.
type recorder struct {
	PlayerEventHandlerBase
	log      []string
	inSlot   []bool
	core     *Core
	allowAll bool
	texts    int
}

func (r *recorder) OnPlayerConnect(p *Player) { r.log = append(r.log, "connect:"+p.Name) }
func (r *recorder) OnPlayerDisconnect(p *Player, reason DisconnectReason) {
	r.log = append(r.log, "disconnect:"+p.Name+":"+reason.String())
	if r.core != nil {
		r.inSlot = append(r.inSlot, r.core.Player(p.ID) == p)
	}
}
func (r *recorder) OnPlayerText(*Player, string) bool { r.texts++; return r.allowAll }
func (r *recorder) OnNPCCreate(n *NPC) { r.log = append(r.log, "npc_create:"+n.Name()) }
func (r *recorder) OnNPCDisconnect(n *NPC) { r.log = append(r.log, "npc_disconnect:"+n.Name()) }
func (r *recorder) OnNPCDestroy(n *NPC) { r.log = append(r.log, "npc_destroy:"+n.Name()) }

func newTestCore(t *testing.T, cfg Config) (*Core, *MemoryPublisher, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	cfg.Clock = clk.Now
	c := New(cfg)
	pub := NewMemoryPublisher()
	c.AddEventPublisher(pub)
	return c, pub, clk
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
