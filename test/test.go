package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

const (
	createRoomURL = "http://localhost:3000/room/create"
	wsURL         = "ws://localhost:3000/ws"
)

type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

var sampleAnswers = map[string][]string{
	"nome":      {"Sandra", "Samuel", "Sofia"},
	"animal":    {"Sapo", "Sagui", "Sardinha"},
	"cor":       {"Salmão", ""},
	"fruta":     {"Seriguela", ""},
	"objeto":    {"Sofá", "Serrote"},
	"profissao": {"Soldador", ""},
	"pais":      {"Suécia", "Senegal"},
	"comida":    {"Sopa", "Sushi"},
}

func main() {
	args := os.Args
	if len(args) < 2 {
		log.Fatal("Usage: go run test.go <number_of_clients> [roomId]")
	}

	numClients, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatal("Invalid number of clients:", err)
	}

	var roomId string
	if len(args) >= 3 {
		roomId = args[2]
		fmt.Println("Using existing room:", roomId)
	} else {
		roomId = createRoom()
		fmt.Println("Created room:", roomId)
	}

	time.Sleep(1 * time.Second) // wait a sec for room to spin up

	for i := 0; i < numClients; i++ {
		go connectAndPlay(roomId, fmt.Sprintf("player%d", i), i == 0)
	}

	select {} // block forever (let goroutines run)
}

func createRoom() string {
	resp, err := http.Post(createRoomURL, "application/json", nil)
	if err != nil {
		log.Fatal("createRoom:", err)
	}
	defer resp.Body.Close()

	var body struct {
		RoomID string `json:"roomId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Fatal("decode createRoom response:", err)
	}
	return body.RoomID
}

func connectAndPlay(roomId, name string, host bool) {
	url := fmt.Sprintf("%s/%s/%s?name=%s", wsURL, roomId, name, name)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Println("dial:", err)
		return
	}
	defer conn.Close()

	if host {
		// give everyone a moment to join, then kick off the round
		time.Sleep(2 * time.Second)
		send(conn, "start_round", map[string]any{})
	}

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("%s read: %v", name, err)
			return
		}

		switch msg.Type {
		case "round_started":
			time.Sleep(time.Duration(rand.Intn(3000)) * time.Millisecond)
			send(conn, "submit_answers", map[string]any{"answers": randomAnswers()})

		case "voting_started":
			voteOnEverything(conn, name, msg.Data)

		case "round_results":
			log.Printf("%s got results: %s", name, string(msg.Data))
			if host {
				time.Sleep(2 * time.Second)
				send(conn, "start_round", map[string]any{})
			}
		}
	}
}

func randomAnswers() map[string]string {
	answers := make(map[string]string, len(sampleAnswers))
	for cat, options := range sampleAnswers {
		answers[cat] = options[rand.Intn(len(options))]
	}
	return answers
}

func voteOnEverything(conn *websocket.Conn, self string, data json.RawMessage) {
	var snapshot struct {
		Voting map[string]map[string]struct {
			NeedsVoting bool `json:"needsVoting"`
		} `json:"voting"`
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("%s decode voting snapshot: %v", self, err)
		return
	}

	for category, entries := range snapshot.Voting {
		for author, entry := range entries {
			if author == self || !entry.NeedsVoting {
				continue
			}
			vote := "accept"
			if rand.Intn(4) == 0 {
				vote = "reject"
			}
			send(conn, "vote_word", map[string]any{
				"targetPlayerId": author,
				"category":       category,
				"vote":           vote,
			})
		}
	}
}

func send(conn *websocket.Conn, msgType string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Println("marshal:", err)
		return
	}
	if err := conn.WriteJSON(WSMessage{Type: msgType, Data: raw}); err != nil {
		log.Println("write:", err)
	}
}
