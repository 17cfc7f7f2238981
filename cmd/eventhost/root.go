package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eventhost/internal/config"
)

// Defaults applied after the config file and flags.
const (
	defaultAddr     = ":8080"
	defaultTickMS   = 50
	defaultLogLevel = "info"
)

// options collects flag values. Zero values mean "not set on the command line".
type options struct {
	configPath string
	logLevel   string
	logFormat  string

	addr        string
	maxPlayers  int
	packetSlots int
	rpcSlots    int
	tickMS      int
	rosterDir   string
	bannedWords string
	corsOrigins string
}

func buildRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "eventhost",
		Short:         "Game server core driven by event dispatchers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (.yaml|.yml|.json|.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults EVENTHOST_LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "json", "Log format: json|console")

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the core, tick loop and HTTP API",
		Example: "  eventhost serve --addr :8080 --roster-dir ~/npcs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.logFormat)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, opts.configPath, log)
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address (defaults EVENTHOST_ADDR or :8080)")
	serveCmd.Flags().IntVar(&opts.maxPlayers, "max-players", 0, "Player pool size")
	serveCmd.Flags().IntVar(&opts.packetSlots, "packet-slots", 0, "Number of packet ids handlers can register for")
	serveCmd.Flags().IntVar(&opts.rpcSlots, "rpc-slots", 0, "Number of RPC ids handlers can register for")
	serveCmd.Flags().IntVar(&opts.tickMS, "tick-ms", 0, "Tick interval in milliseconds")
	serveCmd.Flags().StringVar(&opts.rosterDir, "roster-dir", "", "Directory of *.npc files spawned at startup")
	serveCmd.Flags().StringVar(&opts.bannedWords, "banned-words", "", "Comma-separated words the chat filter rejects")
	serveCmd.Flags().StringVar(&opts.corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins (enables CORS)")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted in-process scenario and print events as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.logFormat)
			if err != nil {
				return err
			}
			return runSimulate(cmd.OutOrStdout(), cfg, log)
		},
	}
	simulateCmd.Flags().StringVar(&opts.bannedWords, "banned-words", "", "Comma-separated words the chat filter rejects")

	root.AddCommand(serveCmd, simulateCmd)
	return root
}

// resolveConfig merges the config file, flags and environment, in that order
// of increasing precedence for flags, then fills defaults.
func resolveConfig(opts *options) (config.Config, error) {
	var cfg config.Config
	if opts.configPath != "" {
		c, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.maxPlayers > 0 {
		cfg.MaxPlayers = opts.maxPlayers
	}
	if opts.packetSlots > 0 {
		cfg.PacketSlots = opts.packetSlots
	}
	if opts.rpcSlots > 0 {
		cfg.RPCSlots = opts.rpcSlots
	}
	if opts.tickMS > 0 {
		cfg.TickMS = opts.tickMS
	}
	if opts.rosterDir != "" {
		cfg.RosterDir = opts.rosterDir
	}
	if words := splitCSV(opts.bannedWords); len(words) > 0 {
		cfg.BannedWords = words
	}
	if origins := splitCSV(opts.corsOrigins); len(origins) > 0 {
		cfg.CORSEnabled = true
		cfg.CORSOrigins = origins
	}

	if cfg.Addr == "" {
		cfg.Addr = envOr("EVENTHOST_ADDR", defaultAddr)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("EVENTHOST_LOG_LEVEL", defaultLogLevel)
	}
	if cfg.TickMS <= 0 {
		cfg.TickMS = defaultTickMS
	}
	return cfg, nil
}

// newLogger builds the root logger. The level is applied globally so a config
// reload can change it for every derived logger.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	if err := setLogLevel(level); err != nil {
		return zerolog.Nop(), err
	}
	var out io.Writer
	switch strings.ToLower(format) {
	case "", "json":
		out = w
	case "console":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format: %s", format)
	}
	return zerolog.New(out).With().Timestamp().Logger(), nil
}

func setLogLevel(level string) error {
	if level == "" {
		level = defaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
