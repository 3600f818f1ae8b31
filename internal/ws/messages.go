package ws

import "encoding/json"

type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// client -> server
const (
	TypeStartRound    = "start_round"
	TypeSubmitAnswers = "submit_answers"
	TypeEndRound      = "end_round"
	TypeVoteWord      = "vote_word"
)

// server -> client
const (
	TypeRoomState      = "room_state"
	TypePlayerJoined   = "player_joined"
	TypePlayerLeft     = "player_left"
	TypeRoundStarted   = "round_started"
	TypeTimer          = "timer"
	TypePlayerFinished = "player_finished"
	TypeVotingStarted  = "voting_started"
	TypeVoteUpdate     = "vote_update"
	TypeRoundResults   = "round_results"
	TypeError          = "error"
)
