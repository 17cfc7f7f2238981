package blackbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// findFreePort picks an available TCP port on localhost.
func findFreePort(t *testing.T) (int, func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	cleanup := func() { _ = ln.Close() }
	var port int
	fmt.Sscanf(portStr, "%d", &port)
	return port, cleanup
}

func projectRootFromThisFile(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file: <root>/tests/blackbox/blackbox_test.go
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

func buildBinary(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "eventhost")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/eventhost")
	cmd.Dir = projectRootFromThisFile(t)
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go build failed: %v\n%s", err, string(out))
	}
	return binPath
}

func createRosterDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		p := filepath.Join(dir, n)
		if err := os.WriteFile(p, []byte(""), 0o644); err != nil {
			t.Fatalf("write roster entry %s: %v", p, err)
		}
	}
	return dir
}

type serverProc struct {
	cmd  *exec.Cmd
	base string // http base URL, e.g. http://127.0.0.1:18080
}

func startServer(t *testing.T, bin string, port int, extra ...string) *serverProc {
	t.Helper()
	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	args := append([]string{"serve", "--addr", fmt.Sprintf(":%d", port), "--log-level", "warn"}, extra...)
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		t.Fatalf("start server: %v", err)
	}
	// Wait for readyz
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(base + "/readyz")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			_ = cmd.Process.Kill()
			t.Fatalf("server did not become ready in time")
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Cleanup(func() { _ = cmd.Process.Kill() })
	return &serverProc{cmd: cmd, base: base}
}

func do(t *testing.T, method, url string, payload []byte) (*http.Response, []byte) {
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

func TestBlackbox_Flow(t *testing.T) {
	bin := buildBinary(t)
	roster := createRosterDir(t, "guard.npc", "merchant.npc", "readme.txt")
	port, release := findFreePort(t)
	release()
	sp := startServer(t, bin, port, "--roster-dir", roster, "--banned-words", "spam", "--max-players", "8")

	resp, body := do(t, http.MethodGet, sp.base+"/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/healthz %d %s", resp.StatusCode, string(body))
	}

	// roster NPCs spawned in name order
	resp, body = do(t, http.MethodGet, sp.base+"/npcs", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/npcs %d %s", resp.StatusCode, string(body))
	}
	var npcs struct {
		NPCs []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"npcs"`
	}
	if err := json.Unmarshal(body, &npcs); err != nil {
		t.Fatalf("/npcs json: %v body=%s", err, string(body))
	}
	if len(npcs.NPCs) != 2 || npcs.NPCs[0].Name != "guard" {
		t.Fatalf("unexpected npcs: %+v", npcs.NPCs)
	}

	// connect a human player
	resp, body = do(t, http.MethodPost, sp.base+"/players", []byte(`{"name":"alice"}`))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /players %d %s", resp.StatusCode, string(body))
	}
	var p struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("player json: %v", err)
	}

	// banned text is vetoed, clean text delivered
	resp, body = do(t, http.MethodPost, fmt.Sprintf("%s/players/%d/text", sp.base, p.ID), []byte(`{"text":"SPAM here"}`))
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"delivered":false`) {
		t.Fatalf("vetoed text %d %s", resp.StatusCode, string(body))
	}
	resp, body = do(t, http.MethodPost, fmt.Sprintf("%s/players/%d/text", sp.base, p.ID), []byte(`{"text":"hello"}`))
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"delivered":true`) {
		t.Fatalf("clean text %d %s", resp.StatusCode, string(body))
	}

	// packet id outside the indexed dispatcher is a client error
	resp, body = do(t, http.MethodPost, fmt.Sprintf("%s/players/%d/packets", sp.base, p.ID), []byte(`{"packet_id":100000,"data":"x"}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("out-of-range packet %d %s", resp.StatusCode, string(body))
	}

	// releasing an NPC frees its slot
	resp, body = do(t, http.MethodDelete, fmt.Sprintf("%s/npcs/%d", sp.base, npcs.NPCs[0].ID), nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE /npcs %d %s", resp.StatusCode, string(body))
	}

	resp, body = do(t, http.MethodGet, sp.base+"/status", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/status %d %s", resp.StatusCode, string(body))
	}
	var status struct {
		Players    int `json:"players"`
		MaxPlayers int `json:"max_players"`
		NPCs       int `json:"npcs"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		t.Fatalf("/status json: %v body=%s", err, string(body))
	}
	if status.Players != 2 || status.MaxPlayers != 8 || status.NPCs != 1 {
		t.Fatalf("unexpected status: %+v", status)
	}

	resp, body = do(t, http.MethodGet, sp.base+"/metrics", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "eventhost_core_events_total") {
		t.Fatalf("/metrics %d missing core counters", resp.StatusCode)
	}
}

func TestBlackbox_UnknownPlayer_404(t *testing.T) {
	bin := buildBinary(t)
	port, release := findFreePort(t)
	release()
	sp := startServer(t, bin, port)

	resp, body := do(t, http.MethodPost, sp.base+"/players/3/text", []byte(`{"text":"hi"}`))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d, body=%s", resp.StatusCode, string(body))
	}
}

func TestBlackbox_Simulate(t *testing.T) {
	bin := buildBinary(t)
	out, err := exec.Command(bin, "simulate").Output()
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 5 {
		t.Fatalf("expected event lines, got %q", string(out))
	}
	var first struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil || first.Name != "component_init" {
		t.Fatalf("first line %q err=%v", lines[0], err)
	}
}
