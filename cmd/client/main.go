package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tindercoin/tindercoin-backend/internal/clientstate"
	"github.com/tindercoin/tindercoin-backend/internal/config"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/infrastructure/database"
)

// Terminal demo client. Keeps its swipe/match/chat state in a local
// clientstate session (memory by default, redis with
// CLIENTSTATE_BACKEND=redis) and talks to the backend over HTTP.

type charactersResponse struct {
	Success    bool               `json:"success"`
	Characters []domain.Character `json:"characters"`
}

type swipeResponse struct {
	Success bool          `json:"success"`
	IsMatch bool          `json:"isMatch"`
	Match   *domain.Match `json:"match"`
}

type chatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Error    string `json:"error"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	storage, cleanup, err := openStorage(cfg)
	if err != nil {
		fmt.Printf("Failed to open client storage: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx := context.Background()
	session := clientstate.New(storage)

	wiped, err := session.Begin(ctx)
	if err != nil {
		fmt.Printf("Failed to start session: %v\n", err)
		os.Exit(1)
	}
	if wiped {
		fmt.Println("Fresh session, starting with a clean slate")
	} else {
		fmt.Println("Resuming existing session")
	}

	api := &apiClient{
		baseURL: cfg.ClientState.APIURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	characters, err := api.getCharacters()
	if err != nil {
		fmt.Printf("Failed to fetch characters: %v\n", err)
		os.Exit(1)
	}

	swiped, err := session.Swipes.IDs(ctx)
	if err != nil {
		fmt.Printf("Failed to read swipe history: %v\n", err)
		os.Exit(1)
	}
	seen := make(map[string]bool, len(swiped))
	for _, id := range swiped {
		seen[id] = true
	}

	scanner := bufio.NewScanner(os.Stdin)

	for _, character := range characters {
		if seen[character.ID] {
			continue
		}

		fmt.Println("--------------------------------------------------")
		fmt.Printf("%s, %d — %s\n", character.Name, character.Age, character.Trait)
		fmt.Println(character.Bio)
		fmt.Print("[l]eft / [r]ight / [u]p / [q]uit > ")

		if !scanner.Scan() {
			return
		}

		var direction domain.SwipeDirection
		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "l":
			direction = domain.SwipeLeft
		case "r":
			direction = domain.SwipeRight
		case "u":
			direction = domain.SwipeUp
		case "q":
			return
		default:
			fmt.Println("Unknown input, skipping")
			continue
		}

		result, err := api.createSwipe(character.ID, direction)
		if err != nil {
			fmt.Printf("Swipe failed: %v\n", err)
			continue
		}
		if err := session.Swipes.Add(ctx, character.ID); err != nil {
			fmt.Printf("Failed to record swipe locally: %v\n", err)
		}

		if !result.IsMatch || result.Match == nil {
			continue
		}

		fmt.Printf("💎 IT'S A MATCH! You and %s matched at %s\n", character.Name, result.Match.Location)
		if err := session.Matches.Add(ctx, clientstate.MatchSummary{
			ID:       result.Match.ID,
			Name:     character.Name,
			ImageURL: character.ImageURL,
			IsNew:    true,
		}); err != nil {
			fmt.Printf("Failed to save match locally: %v\n", err)
			continue
		}

		chatLoop(ctx, scanner, api, session, result.Match.ID, character)
	}

	matches, err := session.Matches.List(ctx)
	if err == nil {
		fmt.Printf("Deck finished. You have %d matches. WAGMI 🚀\n", len(matches))
	}
}

// chatLoop runs a chat with one matched character until a blank line.
func chatLoop(ctx context.Context, scanner *bufio.Scanner, api *apiClient, session *clientstate.Session, matchID string, character domain.Character) {
	fmt.Printf("Chatting with %s (blank line to go back to the deck)\n", character.Name)

	for {
		fmt.Print("you > ")
		if !scanner.Scan() {
			return
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			return
		}

		reply, err := api.sendChat(matchID, message, character)
		if err != nil {
			fmt.Printf("Chat failed: %v\n", err)
			continue
		}

		now := time.Now().Format(time.RFC3339)
		_ = session.Messages.Append(ctx, matchID, clientstate.ChatMessage{
			ID:        fmt.Sprintf("msg-%d", time.Now().UnixMilli()),
			Content:   message,
			IsUser:    true,
			Timestamp: now,
		})
		_ = session.Messages.Append(ctx, matchID, clientstate.ChatMessage{
			ID:        fmt.Sprintf("msg-%d", time.Now().UnixMilli()+1),
			Content:   reply,
			IsUser:    false,
			Timestamp: now,
		})
		if err := session.Matches.TouchMessage(ctx, matchID, reply); err != nil {
			fmt.Printf("Failed to update match preview: %v\n", err)
		}

		fmt.Printf("%s > %s\n", character.Name, reply)
	}
}

func openStorage(cfg *config.Config) (clientstate.Storage, func(), error) {
	if cfg.ClientState.Backend == "redis" {
		client, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return clientstate.NewRedisStorage(client), func() { _ = client.Close() }, nil
	}
	return clientstate.NewMemoryStorage(), func() {}, nil
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func (a *apiClient) getCharacters() ([]domain.Character, error) {
	resp, err := a.http.Get(a.baseURL + "/characters")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body charactersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("backend returned success=false")
	}
	return body.Characters, nil
}

func (a *apiClient) createSwipe(characterID string, direction domain.SwipeDirection) (*swipeResponse, error) {
	payload := map[string]any{
		"characterId": characterID,
		"direction":   direction,
	}
	var body swipeResponse
	if err := a.post("/swipes", payload, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("backend returned success=false")
	}
	return &body, nil
}

func (a *apiClient) sendChat(matchID, message string, character domain.Character) (string, error) {
	payload := map[string]any{
		"matchId": matchID,
		"message": message,
		"characterInfo": map[string]string{
			"name":  character.Name,
			"trait": character.Trait,
			"bio":   character.Bio,
		},
	}
	var body chatResponse
	if err := a.post("/chat", payload, &body); err != nil {
		return "", err
	}
	if !body.Success {
		return "", fmt.Errorf("backend error: %s", body.Error)
	}
	return body.Response, nil
}

func (a *apiClient) post(path string, payload any, out any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := a.http.Post(a.baseURL+path, "application/json", bytes.NewReader(buf))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}
