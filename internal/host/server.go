package host

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"

	"eventhost/pkg/types"
)

// Server serializes access to a Core and its NPC component. It is the
// service behind the HTTP layer and drives the tick loop.
type Server struct {
	mu   sync.Mutex
	core *Core
	npcs *NPCComponent
}

// NewServer wraps core. npcs may be nil when the NPC component is not loaded.
func NewServer(core *Core, npcs *NPCComponent) *Server {
	return &Server{core: core, npcs: npcs}
}

// Do runs fn with exclusive access to the core.
func (s *Server) Do(fn func(c *Core)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.core)
}

func (s *Server) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Ready()
}

func (s *Server) Status() types.StatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := s.core.Snapshot()
	if s.npcs != nil {
		resp.Dispatchers = append(resp.Dispatchers, types.DispatcherStatus{Name: "npc", Handlers: s.npcs.events.Len()})
	}
	return resp
}

func (s *Server) ListPlayers() []types.PlayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.core.Players(), func(p *Player, _ int) types.PlayerInfo { return p.Info() })
}

func (s *Server) ConnectPlayer(name string) (types.PlayerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.core.Connect(name, false)
	if err != nil {
		return types.PlayerInfo{}, err
	}
	return p.Info(), nil
}

func (s *Server) DisconnectPlayer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Disconnect(id, ReasonKicked)
}

func (s *Server) SendText(id int, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.SendText(id, text)
}

func (s *Server) ReceivePacket(id, packetID int, data []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.ReceivePacket(id, packetID, data)
}

func (s *Server) ReceiveRPC(id, rpcID int, data []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.ReceiveRPC(id, rpcID, data)
}

func (s *Server) ListNPCs() []types.NPCInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.npcs == nil {
		return nil
	}
	return lo.Map(s.npcs.List(), func(n *NPC, _ int) types.NPCInfo { return n.Info() })
}

func (s *Server) CreateNPC(name string) (types.NPCInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.npcs == nil {
		return types.NPCInfo{}, npcUnavailableError{}
	}
	n, err := s.npcs.Create(name)
	if err != nil {
		return types.NPCInfo{}, err
	}
	return n.Info(), nil
}

func (s *Server) ReleaseNPC(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.npcs == nil {
		return npcUnavailableError{}
	}
	return s.npcs.Release(id)
}

// Tick advances the core once.
func (s *Server) Tick(elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.core.Tick(elapsed)
}

// Run ticks the core every interval until ctx is done. The elapsed time passed
// to handlers is measured with the core clock.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	last := s.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			now := s.now()
			s.Tick(now.Sub(last))
			last = now
		}
	}
}

// Shutdown frees every component.
func (s *Server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.core.Shutdown()
}

func (s *Server) now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Now()
}
