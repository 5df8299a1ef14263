package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gm "jungle-engine/junglemg"
)

func postJSON(t *testing.T, handler http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestNewGameAndPlay(t *testing.T) {
	srv := NewServer(1)

	w := postJSON(t, srv.Router(), "/api/new_game", struct{}{})
	if w.Code != http.StatusOK {
		t.Fatalf("new_game status = %d", w.Code)
	}
	var created NewGameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.GameID == "" || created.FEN != gm.FENStartPos {
		t.Fatalf("unexpected new game payload %+v", created)
	}
	if len(created.LegalMoves) != 24 {
		t.Fatalf("start position move count = %d", len(created.LegalMoves))
	}

	w = postJSON(t, srv.Router(), "/api/play", PlayRequest{GameID: created.GameID, Move: "g3g4"})
	if w.Code != http.StatusOK {
		t.Fatalf("play status = %d: %s", w.Code, w.Body.String())
	}
	var state StateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.ToMove != "Dark" || state.Status != "ongoing" {
		t.Fatalf("state after g3g4 = %+v", state)
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	srv := NewServer(1)

	w := postJSON(t, srv.Router(), "/api/new_game", struct{}{})
	var created NewGameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	w = postJSON(t, srv.Router(), "/api/play", PlayRequest{GameID: created.GameID, Move: "a1a9"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("illegal move status = %d", w.Code)
	}

	// The game state must be untouched.
	req := httptest.NewRequest(http.MethodGet, "/api/state?game_id="+created.GameID, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	var state StateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.FEN != gm.FENStartPos {
		t.Fatalf("state mutated by illegal move: %q", state.FEN)
	}
}

func TestUnknownGame(t *testing.T) {
	srv := NewServer(1)
	w := postJSON(t, srv.Router(), "/api/play", PlayRequest{GameID: "nope", Move: "g3g4"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown game status = %d", w.Code)
	}
}

func TestAIMovePlays(t *testing.T) {
	srv := NewServer(1)

	w := postJSON(t, srv.Router(), "/api/new_game", struct{}{})
	var created NewGameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	w = postJSON(t, srv.Router(), "/api/ai_move", AIMoveRequest{GameID: created.GameID, MovetimeMs: 50})
	if w.Code != http.StatusOK {
		t.Fatalf("ai_move status = %d: %s", w.Code, w.Body.String())
	}
	var resp AIMoveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.EngineMove == "" || resp.FEN == gm.FENStartPos {
		t.Fatalf("engine did not move: %+v", resp)
	}
	if resp.ToMove != "Dark" {
		t.Fatalf("after the engine's reply it is %s to move", resp.ToMove)
	}
}
