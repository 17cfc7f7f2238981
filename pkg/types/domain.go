package types

// PlayerInfo describes a connected player for /players and /status.
type PlayerInfo struct {
	// Pool slot of the player.
	// example: 0
	ID int `json:"id" example:"0"`
	// Session identifier assigned on connect; changes on every connect even if the slot is reused.
	// example: 0b6c1f6e-8f55-4c0e-9a53-0d6b2f1d9f10
	Session string `json:"session" example:"0b6c1f6e-8f55-4c0e-9a53-0d6b2f1d9f10"`
	// Display name.
	// example: alice
	Name string `json:"name" example:"alice"`
	// True for NPC-controlled players.
	// example: false
	Bot bool `json:"bot" example:"false"`
	// Connect time (unix seconds).
	// example: 1700000000
	ConnectedUnix int64 `json:"connected_unix" example:"1700000000"`
}

// NPCInfo describes an NPC owned by the NPC component.
type NPCInfo struct {
	// Pool slot of the NPC's player.
	// example: 3
	ID int `json:"id" example:"3"`
	// example: guard
	Name string `json:"name" example:"guard"`
	// Time the NPC has been ticked for, in milliseconds.
	// example: 1500
	UptimeMS int64 `json:"uptime_ms" example:"1500"`
}

// DispatcherStatus reports how many handlers a core dispatcher holds.
type DispatcherStatus struct {
	// example: player
	Name string `json:"name" example:"player"`
	// Registered handlers (summed over slots for indexed dispatchers).
	// example: 2
	Handlers int `json:"handlers" example:"2"`
	// Slot count for indexed dispatchers; omitted otherwise.
	// example: 256
	Slots int `json:"slots,omitempty" example:"256"`
}
