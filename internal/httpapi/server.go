package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventhost/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Ready() bool
	Status() types.StatusResponse
	ListPlayers() []types.PlayerInfo
	ConnectPlayer(name string) (types.PlayerInfo, error)
	DisconnectPlayer(id int) error
	SendText(id int, text string) (bool, error)
	ReceivePacket(id, packetID int, data []byte) (bool, error)
	ReceiveRPC(id, rpcID int, data []byte) (bool, error)
	ListNPCs() []types.NPCInfo
	CreateNPC(name string) (types.NPCInfo, error)
	ReleaseNPC(id int) error
}

type api struct{ svc Service }

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	a := &api{svc: svc}
	r.Group(func(r chi.Router) {
		r.Use(InflightMiddleware)
		r.Get("/status", a.status)
		r.Get("/players", a.listPlayers)
		r.Post("/players", a.connectPlayer)
		r.Delete("/players/{id}", a.disconnectPlayer)
		r.Post("/players/{id}/text", a.sendText)
		r.Post("/players/{id}/packets", a.receivePacket)
		r.Post("/players/{id}/rpcs", a.receiveRPC)
		r.Get("/npcs", a.listNPCs)
		r.Post("/npcs", a.createNPC)
		r.Delete("/npcs/{id}", a.releaseNPC)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("starting"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// status godoc
// @Summary      Core status
// @Description  Player counts, loaded components and handler counts per dispatcher.
// @Tags         core
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func (a *api) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Status())
}

// listPlayers godoc
// @Summary  List connected players
// @Tags     players
// @Produce  json
// @Success  200  {object}  types.PlayersResponse
// @Router   /players [get]
func (a *api) listPlayers(w http.ResponseWriter, r *http.Request) {
	players := a.svc.ListPlayers()
	if players == nil {
		players = []types.PlayerInfo{}
	}
	writeJSON(w, http.StatusOK, types.PlayersResponse{Players: players})
}

// connectPlayer godoc
// @Summary  Connect a player
// @Tags     players
// @Accept   json
// @Produce  json
// @Param    body  body      types.ConnectRequest  true  "player"
// @Success  201   {object}  types.PlayerInfo
// @Failure  400   {object}  types.ErrorResponse
// @Failure  503   {object}  types.ErrorResponse
// @Router   /players [post]
func (a *api) connectPlayer(w http.ResponseWriter, r *http.Request) {
	var req types.ConnectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := a.svc.ConnectPlayer(req.Name)
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// disconnectPlayer godoc
// @Summary  Kick a player
// @Tags     players
// @Param    id   path  int  true  "player id"
// @Success  204
// @Failure  404  {object}  types.ErrorResponse
// @Router   /players/{id} [delete]
func (a *api) disconnectPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.svc.DisconnectPlayer(id); err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sendText godoc
// @Summary      Send chat text as a player
// @Description  Delivered is false when any player handler vetoed the text.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "player id"
// @Param        body  body      types.TextRequest  true  "text"
// @Success      200   {object}  types.TextResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /players/{id}/text [post]
func (a *api) sendText(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req types.TextRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	delivered, err := a.svc.SendText(id, req.Text)
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	if !delivered {
		incrementVeto("text")
	}
	writeJSON(w, http.StatusOK, types.TextResponse{Delivered: delivered})
}

// receivePacket godoc
// @Summary      Inject a packet from a player
// @Description  Accepted is false when any handler registered for the packet id rejected it.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "player id"
// @Param        body  body      types.PacketRequest  true  "packet"
// @Success      200   {object}  types.PacketResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /players/{id}/packets [post]
func (a *api) receivePacket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req types.PacketRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	accepted, err := a.svc.ReceivePacket(id, req.PacketID, []byte(req.Data))
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	if !accepted {
		incrementVeto("packet")
	}
	writeJSON(w, http.StatusOK, types.PacketResponse{Accepted: accepted})
}

// receiveRPC godoc
// @Summary      Inject an RPC from a player
// @Description  Accepted is false when an RPC-in handler or a handler registered for the RPC id rejected it.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "player id"
// @Param        body  body      types.RPCRequest  true  "rpc"
// @Success      200   {object}  types.PacketResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /players/{id}/rpcs [post]
func (a *api) receiveRPC(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req types.RPCRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	accepted, err := a.svc.ReceiveRPC(id, req.RPCID, []byte(req.Data))
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	if !accepted {
		incrementVeto("rpc")
	}
	writeJSON(w, http.StatusOK, types.PacketResponse{Accepted: accepted})
}

// listNPCs godoc
// @Summary  List NPCs
// @Tags     npcs
// @Produce  json
// @Success  200  {object}  types.NPCsResponse
// @Router   /npcs [get]
func (a *api) listNPCs(w http.ResponseWriter, r *http.Request) {
	npcs := a.svc.ListNPCs()
	if npcs == nil {
		npcs = []types.NPCInfo{}
	}
	writeJSON(w, http.StatusOK, types.NPCsResponse{NPCs: npcs})
}

// createNPC godoc
// @Summary  Spawn an NPC
// @Tags     npcs
// @Accept   json
// @Produce  json
// @Param    body  body      types.ConnectRequest  true  "npc"
// @Success  201   {object}  types.NPCInfo
// @Failure  400   {object}  types.ErrorResponse
// @Failure  503   {object}  types.ErrorResponse
// @Router   /npcs [post]
func (a *api) createNPC(w http.ResponseWriter, r *http.Request) {
	var req types.ConnectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	n, err := a.svc.CreateNPC(req.Name)
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// releaseNPC godoc
// @Summary  Release an NPC
// @Tags     npcs
// @Param    id   path  int  true  "npc id"
// @Success  204
// @Failure  404  {object}  types.ErrorResponse
// @Router   /npcs/{id} [delete]
func (a *api) releaseNPC(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.svc.ReleaseNPC(id); err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON enforces the JSON content type and body size limit. It writes
// the error response itself and reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		// If exceeded size, MaxBytesReader may cause an error; still return 400 to avoid size leak details
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
