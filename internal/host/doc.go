// Package host is the in-process server core that owns the event dispatchers.
// It is structured into small files by concern:
//
//   - core.go: Core type, component lifecycle, player pool and event firing.
//   - config.go: Config and package defaults; New applies defaults.
//   - handlers.go: capability interfaces, one per event kind.
//   - player.go: Player and DisconnectReason.
//   - npc.go: NPCComponent, bot players driven by the core.
//   - chat.go: ChatFilter, a component that vetoes text and chat packets.
//   - events.go: lifecycle Event and the EventPublisher fan-out.
//   - eventpub_*.go, metrics.go: publisher implementations.
//   - server.go: mutex-guarded facade used by the HTTP layer and tick loop.
//   - errors.go: error types and helpers (IsPlayerNotFound, IsPoolFull, ...).
//
// Core is single-threaded, matching the dispatchers it owns. Concurrent callers
// go through Server, which serializes every call with one mutex. Handlers run
// while that mutex is held and must not call back into Server.
package host
