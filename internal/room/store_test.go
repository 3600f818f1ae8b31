package room

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator mirrors the real validator's contract: blank answers are
// auto-rejected, everything else goes to peer voting.
type stubValidator struct{}

func (stubValidator) PrepareVotingData(players []*Player, letter string, categories []Category) VotingData {
	voting := make(VotingData, len(categories))
	for _, cat := range categories {
		entries := make(map[string]*VotingEntry, len(players))
		for _, p := range players {
			word := p.Answers[cat.ID]
			e := &VotingEntry{Word: word, Votes: make(map[string]Vote)}
			if word == "" {
				e.Result = ResultRejected
			} else {
				e.NeedsVoting = true
			}
			entries[p.ID] = e
		}
		voting[cat.ID] = entries
	}
	return voting
}

func newTestStore() *Store {
	return NewStore(stubValidator{}, Config{})
}

func player(n int) *Player {
	return &Player{ID: fmt.Sprintf("p%d", n), Name: fmt.Sprintf("Player %d", n)}
}

func TestJoinRoomCreatesLazily(t *testing.T) {
	s := newTestStore()

	r, err := s.JoinRoom("ABC", player(1))
	require.NoError(t, err)
	assert.Equal(t, "ABC", r.ID)
	assert.Equal(t, StateWaiting, r.State)
	assert.Len(t, r.Categories, 8)

	got, err := s.GetRoom("ABC")
	require.NoError(t, err)
	assert.Same(t, r, got)
}

func TestFirstJoinerIsHost(t *testing.T) {
	s := newTestStore()

	r, err := s.JoinRoom("ABC", player(1))
	require.NoError(t, err)
	assert.Equal(t, "p1", r.HostID)

	_, err = s.JoinRoom("ABC", player(2))
	require.NoError(t, err)
	assert.Equal(t, "p1", r.HostID, "host must not change on later joins")
}

func TestJoinRoomFull(t *testing.T) {
	s := newTestStore()

	for i := 1; i <= 8; i++ {
		_, err := s.JoinRoom("ABC", player(i))
		require.NoError(t, err)
	}

	_, err := s.JoinRoom("ABC", player(9))
	assert.ErrorIs(t, err, ErrRoomFull)

	r, err := s.GetRoom("ABC")
	require.NoError(t, err)
	assert.Len(t, r.Players, 8)
}

func TestJoinRoomDuplicateName(t *testing.T) {
	s := newTestStore()

	_, err := s.JoinRoom("ABC", &Player{ID: "p1", Name: "Sandra"})
	require.NoError(t, err)

	_, err = s.JoinRoom("ABC", &Player{ID: "p2", Name: "Sandra"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	r, err := s.GetRoom("ABC")
	require.NoError(t, err)
	assert.Len(t, r.Players, 1, "failed join must leave the roster unchanged")
}

func TestRemovePlayerKeepsJoinOrder(t *testing.T) {
	s := newTestStore()
	for i := 1; i <= 4; i++ {
		_, err := s.JoinRoom("ABC", player(i))
		require.NoError(t, err)
	}

	r := s.RemovePlayer("p2")
	require.NotNil(t, r)

	ids := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p1", "p3", "p4"}, ids)
}

func TestRemovePlayerReassignsHost(t *testing.T) {
	s := newTestStore()
	_, err := s.JoinRoom("ABC", player(1))
	require.NoError(t, err)
	_, err = s.JoinRoom("ABC", player(2))
	require.NoError(t, err)

	r := s.RemovePlayer("p1")
	require.NotNil(t, r)
	assert.Equal(t, "p2", r.HostID)
}

func TestRemoveLastPlayerDeletesRoom(t *testing.T) {
	s := newTestStore()
	_, err := s.JoinRoom("ABC", player(1))
	require.NoError(t, err)

	r := s.RemovePlayer("p1")
	require.NotNil(t, r)
	assert.Empty(t, r.Players)

	_, err = s.GetRoom("ABC")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRemovePlayerUnknown(t *testing.T) {
	s := newTestStore()
	_, err := s.JoinRoom("ABC", player(1))
	require.NoError(t, err)

	assert.Nil(t, s.RemovePlayer("ghost"))

	r, err := s.GetRoom("ABC")
	require.NoError(t, err)
	assert.Len(t, r.Players, 1)
}

func TestCreateRoomIdempotent(t *testing.T) {
	s := newTestStore()

	r1 := s.CreateRoom("ABC")
	r2 := s.CreateRoom("ABC")
	assert.Same(t, r1, r2)
}

func TestAllRoomsSnapshot(t *testing.T) {
	s := newTestStore()
	s.CreateRoom("a")
	s.CreateRoom("b")

	snapshot := s.AllRooms()
	s.CreateRoom("c")

	assert.Len(t, snapshot, 2, "later store mutations must not affect the snapshot")
	assert.Len(t, s.AllRooms(), 3)
}

func TestStats(t *testing.T) {
	s := newTestStore()
	_, err := s.JoinRoom("a", player(1))
	require.NoError(t, err)
	_, err = s.JoinRoom("a", player(2))
	require.NoError(t, err)
	_, err = s.JoinRoom("b", player(3))
	require.NoError(t, err)

	st := s.Stats()
	assert.Equal(t, Stats{TotalRooms: 2, TotalPlayers: 3}, st)
}

func TestUpdateCategories(t *testing.T) {
	s := newTestStore()
	s.CreateRoom("ABC")

	cats := []Category{{ID: "animal", Label: "Animal", Icon: "🐸"}}
	r, err := s.UpdateCategories("ABC", cats)
	require.NoError(t, err)
	assert.Equal(t, cats, r.Categories)

	_, err = s.UpdateCategories("nope", cats)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetRoomNotFound(t *testing.T) {
	s := newTestStore()
	_, err := s.GetRoom("nope")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
