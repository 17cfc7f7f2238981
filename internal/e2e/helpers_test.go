package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhost/internal/host"
	"eventhost/internal/httpapi"
)

type fixture struct {
	srv    *httptest.Server
	host   *host.Server
	npcs   *host.NPCComponent
	events *host.MemoryPublisher
	now    time.Time
}

// newFixture wires a full core behind the HTTP API. The clock is frozen and
// advanced only through tick().
func newFixture(t *testing.T, maxPlayers int, comps ...host.Component) *fixture {
	t.Helper()
	f := &fixture{now: time.Unix(1_700_000_000, 0), events: host.NewMemoryPublisher()}
	core := host.New(host.Config{MaxPlayers: maxPlayers, PacketSlots: 8, Clock: func() time.Time { return f.now }})
	f.npcs = host.NewNPCComponent()
	core.AddComponent(f.npcs)
	for _, c := range comps {
		core.AddComponent(c)
	}
	core.AddEventPublisher(f.events)
	core.Init()
	f.host = host.NewServer(core, f.npcs)
	f.srv = httptest.NewServer(httpapi.NewMux(f.host))
	t.Cleanup(func() {
		f.srv.Close()
		f.host.Shutdown()
	})
	return f
}

func (f *fixture) tick(d time.Duration) {
	f.host.Do(func(*host.Core) { f.now = f.now.Add(d) })
	f.host.Tick(d)
}

func httpDo(t *testing.T, method, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, body)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}
