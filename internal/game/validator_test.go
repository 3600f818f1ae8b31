package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiagocrazzy2017/stop-mania-dash/internal/room"
)

func TestPrepareVotingData(t *testing.T) {
	players := []*room.Player{
		{ID: "p1", Answers: map[string]string{"animal": "Sapo", "fruta": "Banana"}},
		{ID: "p2", Answers: map[string]string{"animal": "  ", "fruta": "Seriguela"}},
	}
	categories := []room.Category{
		{ID: "animal", Label: "Animal"},
		{ID: "fruta", Label: "Fruta"},
	}

	voting := NewValidator().PrepareVotingData(players, "S", categories)
	require.Len(t, voting, 2)

	sapo := voting["animal"]["p1"]
	assert.True(t, sapo.NeedsVoting)
	assert.Equal(t, room.ResultNone, sapo.Result)
	assert.Equal(t, "Sapo", sapo.Word)

	blank := voting["animal"]["p2"]
	assert.False(t, blank.NeedsVoting)
	assert.Equal(t, room.ResultRejected, blank.Result)

	wrongLetter := voting["fruta"]["p1"]
	assert.False(t, wrongLetter.NeedsVoting, "Banana does not start with S")
	assert.Equal(t, room.ResultRejected, wrongLetter.Result)

	assert.True(t, voting["fruta"]["p2"].NeedsVoting)
}

func TestPrepareVotingDataEntryPerPlayer(t *testing.T) {
	players := []*room.Player{
		{ID: "p1", Answers: map[string]string{"animal": "Sapo"}},
		{ID: "p2", Answers: map[string]string{}},
	}
	categories := []room.Category{{ID: "animal", Label: "Animal"}}

	voting := NewValidator().PrepareVotingData(players, "S", categories)
	require.Len(t, voting["animal"], 2, "players who never answered still get an auto-rejected entry")
	assert.Equal(t, room.ResultRejected, voting["animal"]["p2"].Result)
}

func TestStartsWith(t *testing.T) {
	testCases := []struct {
		word   string
		letter string
		want   bool
	}{
		{"Sapo", "S", true},
		{"sapo", "S", true},
		{"Água", "A", true},
		{"Ônibus", "O", true},
		{"Çapo", "C", true},
		{"Sapo", "M", false},
		{"", "S", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, startsWith(tc.word, tc.letter), "startsWith(%q, %q)", tc.word, tc.letter)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "agua", Normalize("  Água "))
	assert.Equal(t, "coracao", Normalize("Coração"))
	assert.Equal(t, "sapo", Normalize("SAPO"))
}
