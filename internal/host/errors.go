package host

import (
	"fmt"
	"net/http"
)

// playerNotFoundError signals an unknown or free pool slot.
type playerNotFoundError struct{ id int }

func (e playerNotFoundError) Error() string { return fmt.Sprintf("player not found: %d", e.id) }
func (e playerNotFoundError) StatusCode() int { return http.StatusNotFound }

// IsPlayerNotFound reports whether err indicates a missing player.
func IsPlayerNotFound(err error) bool {
	_, ok := err.(playerNotFoundError)
	return ok
}

// poolFullError signals that every player slot is taken.
type poolFullError struct{ max int }

func (e poolFullError) Error() string { return fmt.Sprintf("player pool full (%d slots)", e.max) }
func (e poolFullError) StatusCode() int { return http.StatusServiceUnavailable }

// IsPoolFull reports whether err indicates an exhausted player pool.
func IsPoolFull(err error) bool {
	_, ok := err.(poolFullError)
	return ok
}

// packetOutOfRangeError signals a packet id outside [0, PacketSlots).
type packetOutOfRangeError struct{ id, count int }

func (e packetOutOfRangeError) Error() string {
	return fmt.Sprintf("packet id %d out of range [0, %d)", e.id, e.count)
}
func (e packetOutOfRangeError) StatusCode() int { return http.StatusBadRequest }

// IsPacketOutOfRange reports whether err indicates an invalid packet id.
func IsPacketOutOfRange(err error) bool {
	_, ok := err.(packetOutOfRangeError)
	return ok
}

// rpcOutOfRangeError signals an RPC id outside [0, RPCSlots).
type rpcOutOfRangeError struct{ id, count int }

func (e rpcOutOfRangeError) Error() string {
	return fmt.Sprintf("rpc id %d out of range [0, %d)", e.id, e.count)
}
func (e rpcOutOfRangeError) StatusCode() int { return http.StatusBadRequest }

// IsRPCOutOfRange reports whether err indicates an invalid RPC id.
func IsRPCOutOfRange(err error) bool {
	_, ok := err.(rpcOutOfRangeError)
	return ok
}

// notNPCError signals a release request for a player the NPC component does not own.
type notNPCError struct{ id int }

func (e notNPCError) Error() string { return fmt.Sprintf("not an npc: %d", e.id) }
func (e notNPCError) StatusCode() int { return http.StatusNotFound }

// IsNotNPC reports whether err indicates a player that is not an NPC.
func IsNotNPC(err error) bool {
	_, ok := err.(notNPCError)
	return ok
}

// invalidNameError rejects empty player names.
type invalidNameError struct{}

func (invalidNameError) Error() string { return "name is required" }
func (invalidNameError) StatusCode() int { return http.StatusBadRequest }

// IsInvalidName reports whether err indicates a rejected player name.
func IsInvalidName(err error) bool {
	_, ok := err.(invalidNameError)
	return ok
}

// npcUnavailableError signals an NPC request on a core without the NPC component.
type npcUnavailableError struct{}

func (npcUnavailableError) Error() string { return "npc component not loaded" }
func (npcUnavailableError) StatusCode() int { return http.StatusServiceUnavailable }

// IsNPCUnavailable reports whether err indicates the NPC component is missing.
func IsNPCUnavailable(err error) bool {
	_, ok := err.(npcUnavailableError)
	return ok
}
