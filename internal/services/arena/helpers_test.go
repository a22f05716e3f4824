package arena

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	"github.com/louisbranch/npc-arena/internal/services/narration"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeNarrator struct {
	narrateReq narration.Request
	question   string
	text       string
	err        error
}

func (n *fakeNarrator) Narrate(_ context.Context, req narration.Request) (string, error) {
	n.narrateReq = req
	return n.text, n.err
}

func (n *fakeNarrator) Ask(_ context.Context, question string) (string, error) {
	n.question = question
	return n.text, n.err
}

func newTestEngine(t *testing.T) *battle.Engine {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return battle.NewEngine(cat)
}

func newTestHandler(t *testing.T, narrator narration.Narrator) (http.Handler, *battle.Engine) {
	t.Helper()
	engine := newTestEngine(t)
	return NewHandler(battlegrpc.NewLocalClient(engine, nil), narrator), engine
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		payload.WriteString(v)
	default:
		if err := json.NewEncoder(&payload).Encode(v); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}
