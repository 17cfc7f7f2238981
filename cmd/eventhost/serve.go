package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"eventhost/internal/common/fsutil"
	"eventhost/internal/config"
	"eventhost/internal/host"
	"eventhost/internal/httpapi"
	"eventhost/internal/registry"
)

// buildHost wires the core with its components and publishers, initializes it
// and spawns the roster.
func buildHost(cfg config.Config, log zerolog.Logger, pubs ...host.EventPublisher) (*host.Server, error) {
	core := host.New(host.Config{
		MaxPlayers:  cfg.MaxPlayers,
		PacketSlots: cfg.PacketSlots,
		RPCSlots:    cfg.RPCSlots,
		Logger:      &log,
	})
	npcs := host.NewNPCComponent()
	core.AddComponent(npcs)
	if len(cfg.BannedWords) > 0 {
		packetID := -1
		if cfg.ChatPacketID != nil {
			packetID = *cfg.ChatPacketID
		}
		core.AddComponent(host.NewChatFilter(packetID, cfg.BannedWords...))
	}
	for _, p := range pubs {
		core.AddEventPublisher(p)
	}
	core.Init()

	srv := host.NewServer(core, npcs)
	if cfg.RosterDir == "" {
		return srv, nil
	}
	dir, err := fsutil.ExpandHome(cfg.RosterDir)
	if err != nil {
		return nil, err
	}
	if !fsutil.PathExists(dir) {
		log.Warn().Str("dir", dir).Msg("roster dir not found, starting without NPCs")
		return srv, nil
	}
	roster, err := registry.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	for _, e := range roster {
		n, err := srv.CreateNPC(e.Name)
		if err != nil {
			log.Error().Err(err).Str("name", e.Name).Msg("spawn npc")
			continue
		}
		log.Info().Int("player_id", n.ID).Str("name", n.Name).Msg("npc spawned")
	}
	return srv, nil
}

func runServe(ctx context.Context, cfg config.Config, configPath string, log zerolog.Logger) error {
	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, cfg.CORSMethods, cfg.CORSHeaders)

	srv, err := buildHost(cfg, log, host.NewLogPublisher(log), host.NewMetricsPublisher())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if configPath != "" {
		go func() {
			err := config.Watch(ctx, configPath, func(c config.Config) {
				if err := setLogLevel(c.LogLevel); err != nil {
					log.Warn().Err(err).Msg("config reload: keeping log level")
					return
				}
				log.Info().Str("log_level", c.LogLevel).Msg("config reloaded")
			}, func(err error) {
				log.Warn().Err(err).Msg("config reload failed")
			})
			if err != nil {
				log.Warn().Err(err).Msg("config watch stopped")
			}
		}()
	}

	go srv.Run(ctx, time.Duration(cfg.TickMS)*time.Millisecond)

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(srv), ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Int("max_players", cfg.MaxPlayers).Int("tick_ms", cfg.TickMS).Msg("eventhost listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		stop()
	}

	// Graceful shutdown (Ctrl+C / SIGTERM)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	srv.Shutdown()
	log.Info().Msg("eventhost stopped")
	if serveErr != nil {
		return fmt.Errorf("server error: %w", serveErr)
	}
	return nil
}
