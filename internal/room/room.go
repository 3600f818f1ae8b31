package room

import "time"

// Methods below assume the caller holds r.Mu. The Store is the only caller;
// it does the locking so every exported operation stays a single critical
// section per room.

func newRoom(id string, maxPlayers int) *Room {
	return &Room{
		ID:           id,
		Players:      make([]*Player, 0, maxPlayers),
		State:        StateWaiting,
		CurrentRound: 1,
		MaxPlayers:   maxPlayers,
		Categories:   DefaultCategories(),
	}
}

func (r *Room) findPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) addPlayer(p *Player) error {
	if len(r.Players) >= r.MaxPlayers {
		return ErrRoomFull
	}
	for _, existing := range r.Players {
		if existing.Name == p.Name {
			return ErrDuplicateName
		}
	}
	if p.Answers == nil {
		p.Answers = make(map[string]string)
	}
	if len(r.Players) == 0 {
		r.HostID = p.ID
	}
	r.Players = append(r.Players, p)
	return nil
}

// removePlayer drops the player from the roster, keeping join order. The
// host role moves to the next player in join order when the host leaves.
func (r *Room) removePlayer(id string) bool {
	for i, p := range r.Players {
		if p.ID != id {
			continue
		}
		r.Players = append(r.Players[:i], r.Players[i+1:]...)
		if r.HostID == id && len(r.Players) > 0 {
			r.HostID = r.Players[0].ID
		}
		return true
	}
	return false
}

func (r *Room) startRound(letter string, seconds int) RoundInfo {
	if r.State == StateResults {
		r.CurrentRound++
	}
	r.cancelTimer()
	r.State = StatePlaying
	r.CurrentLetter = letter
	r.TimeLeft = seconds
	r.RoundStartTime = time.Now()
	r.Voting = nil
	for _, p := range r.Players {
		p.Answers = make(map[string]string)
		p.Finished = false
	}
	return RoundInfo{Letter: letter, TimeLeft: r.TimeLeft, Round: r.CurrentRound}
}

func (r *Room) endRound(validator AnswerValidator) (RoundEnd, error) {
	if r.State != StatePlaying {
		return RoundEnd{}, ErrRoundNotStarted
	}
	r.cancelTimer()
	r.State = StateVoting
	r.Voting = validator.PrepareVotingData(r.Players, r.CurrentLetter, r.Categories)
	return RoundEnd{VotingData: r.Voting, Players: r.Players}, nil
}

func (r *Room) submitAnswers(playerID string, answers map[string]string) error {
	p := r.findPlayer(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	p.Answers = answers
	if p.Answers == nil {
		p.Answers = make(map[string]string)
	}
	p.Finished = true
	return nil
}

func (r *Room) finishVoting() error {
	if r.State != StateVoting {
		return ErrVotingNotStarted
	}
	// Voting data stays readable for the results screen; the next
	// startRound wipes it.
	r.State = StateResults
	return nil
}

// allFinished reports whether every player submitted this round.
func (r *Room) allFinished() bool {
	if len(r.Players) == 0 {
		return false
	}
	for _, p := range r.Players {
		if !p.Finished {
			return false
		}
	}
	return true
}
