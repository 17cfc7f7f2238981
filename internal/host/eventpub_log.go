package host

import "github.com/rs/zerolog"

// LogPublisher writes every event as a debug line.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(l zerolog.Logger) *LogPublisher { return &LogPublisher{log: l} }

func (p *LogPublisher) Publish(e Event) {
	ev := p.log.Debug().Str("event", e.Name)
	if e.PlayerID >= 0 {
		ev = ev.Int("player_id", e.PlayerID)
	}
	if len(e.Fields) > 0 {
		ev = ev.Fields(e.Fields)
	}
	ev.Msg("core event")
}
