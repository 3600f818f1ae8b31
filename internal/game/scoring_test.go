package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiagocrazzy2017/stop-mania-dash/internal/room"
)

func entry(word string, result room.Result) *room.VotingEntry {
	return &room.VotingEntry{Word: word, NeedsVoting: result == room.ResultNone, Result: result}
}

func TestCalculateRoundScoresUnique(t *testing.T) {
	voting := room.VotingData{
		"animal": {
			"p1": entry("Sapo", room.ResultAccepted),
			"p2": entry("Sagui", room.ResultAccepted),
		},
	}

	deltas := CalculateRoundScores(voting)
	assert.Equal(t, []room.ScoreDelta{
		{PlayerID: "p1", RoundScore: 10},
		{PlayerID: "p2", RoundScore: 10},
	}, deltas)
}

func TestCalculateRoundScoresNearDuplicateHalves(t *testing.T) {
	voting := room.VotingData{
		"animal": {
			"p1": entry("Sapo", room.ResultAccepted),
			"p2": entry("Sapos", room.ResultAccepted), // edit distance 1
			"p3": entry("Sagui", room.ResultAccepted),
		},
	}

	deltas := CalculateRoundScores(voting)
	assert.Equal(t, []room.ScoreDelta{
		{PlayerID: "p1", RoundScore: 5},
		{PlayerID: "p2", RoundScore: 5},
		{PlayerID: "p3", RoundScore: 10},
	}, deltas)
}

func TestCalculateRoundScoresDuplicateIgnoresCaseAndAccents(t *testing.T) {
	voting := room.VotingData{
		"fruta": {
			"p1": entry("Maçã", room.ResultAccepted),
			"p2": entry("maca", room.ResultAccepted),
		},
	}

	deltas := CalculateRoundScores(voting)
	assert.Equal(t, []room.ScoreDelta{
		{PlayerID: "p1", RoundScore: 5},
		{PlayerID: "p2", RoundScore: 5},
	}, deltas)
}

func TestCalculateRoundScoresRejectedScoresZero(t *testing.T) {
	voting := room.VotingData{
		"animal": {
			"p1": entry("Sapo", room.ResultAccepted),
			"p2": entry("Xaxim", room.ResultRejected),
		},
		"cor": {
			"p1": entry("", room.ResultRejected),
			"p2": entry("Salmão", room.ResultAccepted),
		},
	}

	deltas := CalculateRoundScores(voting)
	assert.Equal(t, []room.ScoreDelta{
		{PlayerID: "p1", RoundScore: 10},
		{PlayerID: "p2", RoundScore: 10},
	}, deltas)
}

func TestCalculateRoundScoresAllRejectedStillListsPlayer(t *testing.T) {
	voting := room.VotingData{
		"animal": {
			"p1": entry("Xaxim", room.ResultRejected),
		},
	}

	deltas := CalculateRoundScores(voting)
	assert.Equal(t, []room.ScoreDelta{{PlayerID: "p1", RoundScore: 0}}, deltas)
}

func TestCalculateRoundScoresAcrossCategories(t *testing.T) {
	voting := room.VotingData{
		"animal": {"p1": entry("Sapo", room.ResultAccepted)},
		"fruta":  {"p1": entry("Seriguela", room.ResultAccepted)},
		"cor":    {"p1": entry("", room.ResultRejected)},
	}

	deltas := CalculateRoundScores(voting)
	assert.Equal(t, []room.ScoreDelta{{PlayerID: "p1", RoundScore: 20}}, deltas)
}
