package game

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/hiagocrazzy2017/stop-mania-dash/internal/room"
)

const (
	pointsUnique    = 10
	pointsDuplicate = 5
)

// CalculateRoundScores turns resolved voting data into per-player deltas.
// Rejected and auto-rejected words score zero; an accepted word scores full
// points unless another accepted answer in the same category is a near
// duplicate (edit distance <= 1 after normalizing), which halves it.
func CalculateRoundScores(voting room.VotingData) []room.ScoreDelta {
	totals := make(map[string]int)
	for _, entries := range voting {
		for author, entry := range entries {
			if _, ok := totals[author]; !ok {
				totals[author] = 0
			}
			if entry.Result != room.ResultAccepted {
				continue
			}
			totals[author] += scoreWord(author, entry, entries)
		}
	}

	deltas := make([]room.ScoreDelta, 0, len(totals))
	for id, pts := range totals {
		deltas = append(deltas, room.ScoreDelta{PlayerID: id, RoundScore: pts})
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].PlayerID < deltas[j].PlayerID })
	return deltas
}

func scoreWord(author string, entry *room.VotingEntry, entries map[string]*room.VotingEntry) int {
	word := Normalize(entry.Word)
	for otherAuthor, other := range entries {
		if otherAuthor == author || other.Result != room.ResultAccepted {
			continue
		}
		if levenshtein.ComputeDistance(word, Normalize(other.Word)) <= 1 {
			return pointsDuplicate
		}
	}
	return pointsUnique
}
