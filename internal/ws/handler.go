package ws

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/hiagocrazzy2017/stop-mania-dash/internal/game"
	"github.com/hiagocrazzy2017/stop-mania-dash/internal/room"
	"github.com/hiagocrazzy2017/stop-mania-dash/logger"
)

// Handler glues the websocket layer to the room store. Round-end policy
// lives here: rounds end when the clock runs out or when everyone has
// submitted, and scores are applied once every vote is in.
type Handler struct {
	store *room.Store
	hub   *Hub
}

func NewHandler(store *room.Store, hub *Hub) *Handler {
	return &Handler{store: store, hub: hub}
}

// ServeWS is the websocket entrypoint for /ws/:roomId/:playerId.
func (h *Handler) ServeWS(conn *websocket.Conn) {
	roomID := conn.Params("roomId")
	playerID := conn.Params("playerId")
	name := conn.Query("name")
	if playerID == "" {
		playerID = uuid.NewString()
	}
	if name == "" {
		name = "Jogador-" + shortID(playerID)
	}

	c := NewClient(playerID, name, roomID, conn)
	if err := h.Connect(c); err != nil {
		if payload, ok := envelope(TypeError, errorPayload(err)); ok {
			conn.WriteMessage(websocket.TextMessage, payload)
		}
		conn.Close()
		return
	}

	go c.ReadPump(h)
	c.WritePump()
}

func (h *Handler) Connect(c *Client) error {
	p := &room.Player{ID: c.ID, Name: c.Name}
	if _, err := h.store.JoinRoom(c.RoomID, p); err != nil {
		logger.Info("client %s join room %s refused: %v", c.ID, c.RoomID, err)
		return err
	}
	h.hub.Register(c)
	h.broadcastRoomState(c.RoomID)
	h.hub.Broadcast(c.RoomID, TypePlayerJoined, map[string]string{
		"playerId": p.ID,
		"name":     p.Name,
	})
	return nil
}

func (h *Handler) Disconnect(c *Client) {
	h.hub.Unregister(c)
	if r := h.store.RemovePlayer(c.ID); r != nil {
		h.hub.Broadcast(c.RoomID, TypePlayerLeft, map[string]string{"playerId": c.ID})
		h.broadcastRoomState(c.RoomID)
	}
}

func (h *Handler) HandleMessage(c *Client, msg WSMessage) {
	switch msg.Type {
	case TypeStartRound:
		h.startRound(c, msg.Data)
	case TypeSubmitAnswers:
		h.submitAnswers(c, msg.Data)
	case TypeEndRound:
		if h.isHost(c) {
			h.EndRound(c.RoomID)
		}
	case TypeVoteWord:
		h.voteWord(c, msg.Data)
	default:
		logger.Info("client %s unknown message type %q", c.ID, msg.Type)
	}
}

func (h *Handler) startRound(c *Client, data json.RawMessage) {
	if !h.isHost(c) {
		h.hub.SendTo(c, TypeError, map[string]string{"message": "only the host can start a round"})
		return
	}
	var payload struct {
		Letter string `json:"letter"`
	}
	if len(data) > 0 {
		json.Unmarshal(data, &payload)
	}
	if payload.Letter == "" {
		payload.Letter = game.RandomLetter()
	}
	info, err := h.store.StartRound(c.RoomID, payload.Letter)
	if err != nil {
		h.hub.SendTo(c, TypeError, errorPayload(err))
		return
	}
	h.hub.Broadcast(c.RoomID, TypeRoundStarted, info)
}

// EndRound moves the room into voting and pushes the fresh state to
// everyone. Called on host request, on clock expiry and when the last player
// submits; whichever fires first wins, the rest are no-ops.
func (h *Handler) EndRound(roomID string) {
	if _, err := h.store.EndRound(roomID); err != nil {
		return
	}
	h.broadcastRoomState(roomID)
	h.hub.Broadcast(roomID, TypeVotingStarted, h.roomSnapshot(roomID))

	// The validator may have resolved every entry itself (all answers blank
	// or dictionary hits), in which case no vote will ever arrive to move
	// the room along.
	if done, err := h.store.AllVotesComplete(roomID); err == nil && done {
		h.finishRound(roomID)
	}
}

func (h *Handler) submitAnswers(c *Client, data json.RawMessage) {
	var payload struct {
		Answers map[string]string `json:"answers"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Error("client %s invalid answers payload: %v", c.ID, err)
		return
	}
	if _, err := h.store.SubmitAnswers(c.RoomID, c.ID, payload.Answers); err != nil {
		h.hub.SendTo(c, TypeError, errorPayload(err))
		return
	}
	h.hub.Broadcast(c.RoomID, TypePlayerFinished, map[string]string{"playerId": c.ID})

	if done, err := h.store.AllFinished(c.RoomID); err == nil && done {
		h.EndRound(c.RoomID)
	}
}

func (h *Handler) voteWord(c *Client, data json.RawMessage) {
	var payload struct {
		TargetPlayerID string `json:"targetPlayerId"`
		Category       string `json:"category"`
		Vote           string `json:"vote"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Error("client %s invalid vote payload: %v", c.ID, err)
		return
	}
	vote := room.Vote(payload.Vote)
	if vote != room.VoteAccept && vote != room.VoteReject {
		h.hub.SendTo(c, TypeError, map[string]string{"message": "vote must be accept or reject"})
		return
	}
	if _, err := h.store.VoteWord(c.RoomID, payload.TargetPlayerID, payload.Category, vote, c.ID); err != nil {
		h.hub.SendTo(c, TypeError, errorPayload(err))
		return
	}
	h.hub.Broadcast(c.RoomID, TypeVoteUpdate, map[string]string{
		"category":       payload.Category,
		"targetPlayerId": payload.TargetPlayerID,
		"voterId":        c.ID,
	})

	if done, err := h.store.AllVotesComplete(c.RoomID); err == nil && done {
		h.finishRound(c.RoomID)
	}
}

// finishRound applies scores and moves the room to results. FinishVoting
// only succeeds for one caller, so concurrent final votes cannot double
// apply the deltas.
func (h *Handler) finishRound(roomID string) {
	r, err := h.store.FinishVoting(roomID)
	if err != nil {
		return
	}
	r.Mu.RLock()
	scores := game.CalculateRoundScores(r.Voting)
	r.Mu.RUnlock()
	if _, err := h.store.UpdateScores(roomID, scores); err != nil {
		return
	}
	h.hub.Broadcast(roomID, TypeRoundResults, map[string]any{
		"scores": scores,
		"room":   h.roomSnapshot(roomID),
	})
}

func (h *Handler) isHost(c *Client) bool {
	r, err := h.store.GetRoom(c.RoomID)
	if err != nil {
		return false
	}
	r.Mu.RLock()
	defer r.Mu.RUnlock()
	return r.HostID == c.ID
}

// roomSnapshot marshals the room under its read lock so broadcast payloads
// never see a half-applied mutation.
func (h *Handler) roomSnapshot(roomID string) json.RawMessage {
	r, err := h.store.GetRoom(roomID)
	if err != nil {
		return json.RawMessage(`null`)
	}
	r.Mu.RLock()
	defer r.Mu.RUnlock()
	b, err := json.Marshal(r)
	if err != nil {
		logger.Error("marshal room %s: %v", roomID, err)
		return json.RawMessage(`null`)
	}
	return b
}

func (h *Handler) broadcastRoomState(roomID string) {
	h.hub.Broadcast(roomID, TypeRoomState, h.roomSnapshot(roomID))
}

func errorPayload(err error) map[string]string {
	return map[string]string{"message": err.Error()}
}

func shortID(id string) string {
	if len(id) > 5 {
		return id[:5]
	}
	return id
}
