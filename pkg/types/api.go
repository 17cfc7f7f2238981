package types

// ConnectRequest is the body of POST /players and POST /npcs.
type ConnectRequest struct {
	// Required display name.
	// example: alice
	Name string `json:"name" example:"alice"`
}

// TextRequest is the body of POST /players/{id}/text.
type TextRequest struct {
	// example: hello world
	Text string `json:"text" example:"hello world"`
}

// TextResponse reports whether every player handler accepted the text.
type TextResponse struct {
	// example: true
	Delivered bool `json:"delivered" example:"true"`
}

// PacketRequest is the body of POST /players/{id}/packets.
type PacketRequest struct {
	// Packet id; must be below the configured packet slot count.
	// example: 1
	PacketID int `json:"packet_id" example:"1"`
	// Raw payload.
	// example: hi
	Data string `json:"data" example:"hi"`
}

// RPCRequest is the body of POST /players/{id}/rpcs.
type RPCRequest struct {
	// RPC id; must be below the configured RPC slot count.
	// example: 25
	RPCID int `json:"rpc_id" example:"25"`
	// Raw payload.
	// example: hi
	Data string `json:"data" example:"hi"`
}

// PacketResponse reports whether the packet-in handlers and every handler of
// the packet id accepted it. It is also returned for RPCs.
type PacketResponse struct {
	// example: true
	Accepted bool `json:"accepted" example:"true"`
}

// PlayersResponse wraps the list returned by GET /players.
type PlayersResponse struct {
	Players []PlayerInfo `json:"players"`
}

// NPCsResponse wraps the list returned by GET /npcs.
type NPCsResponse struct {
	NPCs []NPCInfo `json:"npcs"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// True once every component has been initialized.
	// example: true
	Ready bool `json:"ready" example:"true"`
	// example: 2
	Players int `json:"players" example:"2"`
	// example: 100
	MaxPlayers int `json:"max_players" example:"100"`
	// example: 1
	NPCs int `json:"npcs" example:"1"`
	// Component names in load order.
	Components []string `json:"components"`
	// Handler counts per core dispatcher.
	Dispatchers []DispatcherStatus `json:"dispatchers"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
