package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/rs/zerolog"

	"eventhost/internal/config"
	"eventhost/internal/host"
)

// simulation steps run against a fresh core.
const (
	simulateTicks   = 3
	simulatePlayers = 2
)

// runSimulate drives a short scripted session and writes every lifecycle
// event to w as one JSON object per line.
func runSimulate(w io.Writer, cfg config.Config, log zerolog.Logger) error {
	if len(cfg.BannedWords) == 0 {
		cfg.BannedWords = []string{"griefing"}
	}
	cfg.RosterDir = ""

	enc := json.NewEncoder(w)
	var encErr error
	emit := host.PublisherFunc(func(e host.Event) {
		if encErr == nil {
			encErr = enc.Encode(e)
		}
	})
	srv, err := buildHost(cfg, log, &emit)
	if err != nil {
		return err
	}

	var ids []int
	for i := 0; i < simulatePlayers; i++ {
		p, err := srv.ConnectPlayer(simPlayerName(i))
		if err != nil {
			return err
		}
		ids = append(ids, p.ID)
	}
	npc, err := srv.CreateNPC("guard")
	if err != nil {
		return err
	}
	for i := 0; i < simulateTicks; i++ {
		srv.Tick(time.Duration(cfg.TickMS) * time.Millisecond)
	}
	if _, err := srv.SendText(ids[0], "hello"); err != nil {
		return err
	}
	if _, err := srv.SendText(ids[1], "stop "+cfg.BannedWords[0]); err != nil {
		return err
	}
	chatID := host.DefaultChatPacketID
	if cfg.ChatPacketID != nil && *cfg.ChatPacketID >= 0 {
		chatID = *cfg.ChatPacketID
	}
	if _, err := srv.ReceivePacket(ids[0], chatID, []byte(cfg.BannedWords[0])); err != nil {
		return err
	}
	if err := srv.ReleaseNPC(npc.ID); err != nil {
		return err
	}
	if err := srv.DisconnectPlayer(ids[1]); err != nil {
		return err
	}
	srv.Shutdown()
	return encErr
}

func simPlayerName(i int) string {
	return string(rune('a'+i)) + "-player"
}
