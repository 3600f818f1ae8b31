package room

import (
	"sync"
	"time"
)

// State is the room's position in the round lifecycle.
type State string

const (
	StateWaiting State = "waiting"
	StatePlaying State = "playing"
	StateVoting  State = "voting"
	StateResults State = "results"
)

type Vote string

const (
	VoteAccept Vote = "accept"
	VoteReject Vote = "reject"
)

type Result string

const (
	ResultNone     Result = ""
	ResultAccepted Result = "accepted"
	ResultRejected Result = "rejected"
)

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type Player struct {
	ID       string            `json:"playerId"`
	Name     string            `json:"name"`
	Score    int               `json:"score"`
	Answers  map[string]string `json:"answers"`
	Finished bool              `json:"finished"`
}

// VotingEntry is one player's submitted word for one category. Entries the
// validator resolved itself (blank word, wrong letter, dictionary hit) carry
// NeedsVoting=false and a pre-set Result; everything else waits on peer votes.
type VotingEntry struct {
	Word        string          `json:"word"`
	NeedsVoting bool            `json:"needsVoting"`
	Votes       map[string]Vote `json:"votes"`
	Result      Result          `json:"result,omitempty"`
}

// VotingData maps category id -> author player id -> entry.
type VotingData map[string]map[string]*VotingEntry

type ScoreDelta struct {
	PlayerID   string `json:"playerId"`
	RoundScore int    `json:"roundScore"`
}

type RoundInfo struct {
	Letter   string `json:"letter"`
	TimeLeft int    `json:"timeLeft"`
	Round    int    `json:"round"`
}

type RoundEnd struct {
	VotingData VotingData `json:"votingData"`
	Players    []*Player  `json:"players"`
}

type Stats struct {
	TotalRooms   int `json:"totalRooms"`
	TotalPlayers int `json:"totalPlayers"`
}

type Room struct {
	ID             string     `json:"roomId"`
	Players        []*Player  `json:"players"`
	State          State      `json:"state"`
	CurrentRound   int        `json:"currentRound"`
	CurrentLetter  string     `json:"currentLetter"`
	TimeLeft       int        `json:"timeLeft"`
	RoundStartTime time.Time  `json:"roundStartTime"`
	MaxPlayers     int        `json:"maxPlayers"`
	HostID         string     `json:"hostId"`
	Categories     []Category `json:"categories"`
	Voting         VotingData `json:"voting,omitempty"`

	Mu sync.RWMutex `json:"-"`

	//internal
	timer *roundTimer
}

// AnswerValidator turns a round's raw answers into the voting structure.
// Implemented by internal/game.
type AnswerValidator interface {
	PrepareVotingData(players []*Player, letter string, categories []Category) VotingData
}
