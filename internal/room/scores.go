package room

// applyScores adds each round delta to the player's cumulative score.
// Deltas for players no longer in the room are skipped, not errors; players
// can leave between voting and scoring. Caller holds r.Mu.
func (r *Room) applyScores(scores []ScoreDelta) {
	for _, s := range scores {
		if p := r.findPlayer(s.PlayerID); p != nil {
			p.Score += s.RoundScore
		}
	}
}
