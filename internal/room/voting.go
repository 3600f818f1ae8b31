package room

// requiredVotes is how many distinct voters an entry needs before it
// resolves: everyone votes on everyone else's words, never their own.
func requiredVotes(playerCount int) int {
	if playerCount <= 1 {
		return 0
	}
	return playerCount - 1
}

// resolve writes the entry's result by strict majority. Ties reject.
func (e *VotingEntry) resolve() {
	accepts, rejects := 0, 0
	for _, v := range e.Votes {
		if v == VoteAccept {
			accepts++
		} else {
			rejects++
		}
	}
	if accepts > rejects {
		e.Result = ResultAccepted
	} else {
		e.Result = ResultRejected
	}
}

// voteWord records one vote, replacing any earlier vote by the same voter on
// the same entry. Caller holds r.Mu.
func (r *Room) voteWord(targetPlayerID, category string, vote Vote, voterID string) error {
	if r.State != StateVoting || r.Voting == nil {
		return ErrVotingNotStarted
	}
	entries, ok := r.Voting[category]
	if !ok {
		return ErrWordNotFound
	}
	entry, ok := entries[targetPlayerID]
	if !ok {
		return ErrWordNotFound
	}
	// Authors never vote on their own words; the threshold already counts
	// everyone but them.
	if voterID == targetPlayerID {
		return nil
	}
	if entry.Votes == nil {
		entry.Votes = make(map[string]Vote)
	}
	entry.Votes[voterID] = vote
	return nil
}

// allVotesComplete walks every needsVoting entry, eagerly resolving the ones
// that crossed the threshold, and reports whether all of them did. Callers
// poll it, so partial resolution on each call is intentional. Caller holds
// r.Mu.
func (r *Room) allVotesComplete() bool {
	required := requiredVotes(len(r.Players))
	complete := true
	for _, entries := range r.Voting {
		for _, entry := range entries {
			if !entry.NeedsVoting {
				continue
			}
			if len(entry.Votes) >= required {
				entry.resolve()
			} else {
				complete = false
			}
		}
	}
	return complete
}
