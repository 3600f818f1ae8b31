package game

import (
	"strings"

	"github.com/hiagocrazzy2017/stop-mania-dash/internal/room"
)

// Validator builds voting data out of a round's raw answers. Answers it can
// judge on its own (blank, wrong starting letter, dictionary hits) are
// resolved up front; the rest go to peer voting.
type Validator struct {
	dict *Dictionary
}

func NewValidator() *Validator {
	return &Validator{dict: DefaultDictionary()}
}

func (v *Validator) PrepareVotingData(players []*room.Player, letter string, categories []room.Category) room.VotingData {
	voting := make(room.VotingData, len(categories))
	for _, cat := range categories {
		entries := make(map[string]*room.VotingEntry, len(players))
		for _, p := range players {
			word := strings.TrimSpace(p.Answers[cat.ID])
			entries[p.ID] = v.makeEntry(word, letter)
		}
		voting[cat.ID] = entries
	}
	return voting
}

func (v *Validator) makeEntry(word, letter string) *room.VotingEntry {
	entry := &room.VotingEntry{
		Word:  word,
		Votes: make(map[string]room.Vote),
	}
	switch {
	case word == "" || !startsWith(word, letter):
		entry.Result = room.ResultRejected
	case v.dict.Contains(word):
		entry.Result = room.ResultAccepted
	default:
		entry.NeedsVoting = true
	}
	return entry
}

// startsWith compares first letters ignoring case and pt-BR accents, so
// "Água" counts for the letter A.
func startsWith(word, letter string) bool {
	w := []rune(Normalize(word))
	l := []rune(Normalize(letter))
	if len(w) == 0 || len(l) == 0 {
		return false
	}
	return w[0] == l[0]
}

var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
}

// Normalize lowercases and strips accents for comparisons.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if folded, ok := accentFold[r]; ok {
			return folded
		}
		return r
	}, s)
}
