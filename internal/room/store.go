package room

import (
	"sync"
	"time"

	"github.com/hiagocrazzy2017/stop-mania-dash/logger"
)

// Config tunes a Store. Zero values fall back to the classic ruleset.
type Config struct {
	RoundSeconds int
	MaxPlayers   int
	TickInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.RoundSeconds <= 0 {
		c.RoundSeconds = 60
	}
	if c.MaxPlayers <= 0 {
		c.MaxPlayers = 8
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	return c
}

// Store owns every live Room, keyed by room id. Rooms are created lazily on
// join (or explicitly) and dropped when their last player leaves. All game
// operations go through the Store so each one runs as a single critical
// section under the room's own lock; the Store's lock only guards the map.
type Store struct {
	Rooms map[string]*Room
	sync.RWMutex

	cfg       Config
	validator AnswerValidator

	onTick   func(roomID string, timeLeft int)
	onExpire func(roomID string)
}

func NewStore(validator AnswerValidator, cfg Config) *Store {
	return &Store{
		Rooms:     make(map[string]*Room),
		cfg:       cfg.withDefaults(),
		validator: validator,
	}
}

// SetTimerHooks wires the countdown callbacks. Call once, before serving.
func (s *Store) SetTimerHooks(onTick func(roomID string, timeLeft int), onExpire func(roomID string)) {
	s.onTick = onTick
	s.onExpire = onExpire
}

// CreateRoom inserts a fresh room with the built-in categories. Asking for
// an id that is already live returns the existing room.
func (s *Store) CreateRoom(id string) *Room {
	s.Lock()
	defer s.Unlock()
	if r, ok := s.Rooms[id]; ok {
		return r
	}
	r := newRoom(id, s.cfg.MaxPlayers)
	s.Rooms[id] = r
	logger.Info("room %s created", id)
	return r
}

// JoinRoom adds the player to the room, creating the room if it does not
// exist yet. The first joiner becomes host.
func (s *Store) JoinRoom(id string, p *Player) (*Room, error) {
	// The store lock is held across the whole join so a concurrent
	// RemovePlayer cannot delete the room out from under a lazy create.
	s.Lock()
	defer s.Unlock()
	r, ok := s.Rooms[id]
	if !ok {
		r = newRoom(id, s.cfg.MaxPlayers)
		s.Rooms[id] = r
		logger.Info("room %s created on join", id)
	}

	r.Mu.Lock()
	defer r.Mu.Unlock()
	if err := r.addPlayer(p); err != nil {
		return nil, err
	}
	logger.Info("player %s (%s) joined room %s", p.ID, p.Name, id)
	return r, nil
}

// RemovePlayer scans every room for the player and drops them. When the
// roster empties the round timer is canceled and the room is deleted.
// Returns the affected room, or nil if the player was in no room.
func (s *Store) RemovePlayer(playerID string) *Room {
	s.Lock()
	defer s.Unlock()
	for id, r := range s.Rooms {
		r.Mu.Lock()
		if !r.removePlayer(playerID) {
			r.Mu.Unlock()
			continue
		}
		if len(r.Players) == 0 {
			r.cancelTimer()
			delete(s.Rooms, id)
			logger.Info("room %s empty, removed", id)
		}
		r.Mu.Unlock()
		logger.Info("player %s left room %s", playerID, id)
		return r
	}
	return nil
}

func (s *Store) GetRoom(id string) (*Room, error) {
	s.RLock()
	defer s.RUnlock()
	r, ok := s.Rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// AllRooms returns a snapshot slice; mutations to the store after the call
// do not affect an iteration in flight.
func (s *Store) AllRooms() []*Room {
	s.RLock()
	defer s.RUnlock()
	out := make([]*Room, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		out = append(out, r)
	}
	return out
}

// Stats recomputes the totals on every call, nothing cached.
func (s *Store) Stats() Stats {
	s.RLock()
	defer s.RUnlock()
	st := Stats{TotalRooms: len(s.Rooms)}
	for _, r := range s.Rooms {
		r.Mu.RLock()
		st.TotalPlayers += len(r.Players)
		r.Mu.RUnlock()
	}
	return st
}

// UpdateCategories swaps the room's category set wholesale. Only rounds
// started afterwards see the new set.
func (s *Store) UpdateCategories(id string, categories []Category) (*Room, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}
	r.Mu.Lock()
	r.Categories = categories
	r.Mu.Unlock()
	return r, nil
}

// StartRound moves the room into playing, resets every player's round state
// and starts the countdown.
func (s *Store) StartRound(id, letter string) (RoundInfo, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return RoundInfo{}, err
	}
	r.Mu.Lock()
	info := r.startRound(letter, s.cfg.RoundSeconds)
	t := newRoundTimer(s.cfg.TickInterval)
	r.timer = t
	r.Mu.Unlock()
	go s.countdown(r, t)
	logger.Info("room %s round %d started, letter %s", id, info.Round, letter)
	return info, nil
}

// EndRound moves the room into voting and builds the voting structure from
// the answers submitted so far.
func (s *Store) EndRound(id string) (RoundEnd, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return RoundEnd{}, err
	}
	r.Mu.Lock()
	defer r.Mu.Unlock()
	end, err := r.endRound(s.validator)
	if err != nil {
		return RoundEnd{}, err
	}
	logger.Info("room %s round %d ended, voting open", id, r.CurrentRound)
	return end, nil
}

// SubmitAnswers records the player's answers verbatim and marks them
// finished. Whether that should end the round is the caller's policy.
func (s *Store) SubmitAnswers(id, playerID string, answers map[string]string) (*Room, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if err := r.submitAnswers(playerID, answers); err != nil {
		return nil, err
	}
	return r, nil
}

// AllFinished reports whether every player in the room has submitted.
func (s *Store) AllFinished(id string) (bool, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return false, err
	}
	r.Mu.RLock()
	defer r.Mu.RUnlock()
	return r.allFinished(), nil
}

// VoteWord records voterID's vote on the (category, targetPlayerID) entry,
// replacing any earlier vote by the same voter.
func (s *Store) VoteWord(id, targetPlayerID, category string, vote Vote, voterID string) (*Room, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if err := r.voteWord(targetPlayerID, category, vote, voterID); err != nil {
		return nil, err
	}
	return r, nil
}

// AllVotesComplete resolves every entry that has crossed the vote threshold
// and reports whether all needsVoting entries have. Safe to poll; returns
// false while the room has no voting data.
func (s *Store) AllVotesComplete(id string) (bool, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return false, err
	}
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if r.Voting == nil {
		return false, nil
	}
	return r.allVotesComplete(), nil
}

// FinishVoting moves the room from voting to results.
func (s *Store) FinishVoting(id string) (*Room, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if err := r.finishVoting(); err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateScores applies the round's deltas to cumulative scores. Deltas for
// unknown players are ignored.
func (s *Store) UpdateScores(id string, scores []ScoreDelta) (*Room, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}
	r.Mu.Lock()
	defer r.Mu.Unlock()
	r.applyScores(scores)
	return r, nil
}

// countdown drives one round's clock. It exits on cancel, on leaving the
// playing state, on being replaced by a newer timer, or at zero.
func (s *Store) countdown(r *Room, t *roundTimer) {
	for {
		select {
		case <-t.stop:
			return
		case <-t.ticker.C:
			r.Mu.Lock()
			if r.State != StatePlaying || r.timer != t {
				r.Mu.Unlock()
				t.Cancel()
				return
			}
			r.TimeLeft--
			left := r.TimeLeft
			r.Mu.Unlock()
			if s.onTick != nil {
				s.onTick(r.ID, left)
			}
			if left <= 0 {
				t.Cancel()
				if s.onExpire != nil {
					s.onExpire(r.ID)
				}
				return
			}
		}
	}
}
