package arena

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	"github.com/louisbranch/npc-arena/internal/services/narration"
)

// SimulateRequest is the body of POST /battle/simulate and the first frame
// of a battle stream.
type SimulateRequest struct {
	NPCA     string `json:"npc_a" binding:"required"`
	NPCB     string `json:"npc_b" binding:"required"`
	Level    *int   `json:"level,omitempty"`
	Seed     *int64 `json:"seed,omitempty"`
	MaxTurns *int   `json:"max_turns,omitempty"`
}

// Battle converts the body to an engine request with defaults applied.
func (r SimulateRequest) Battle() battle.Request {
	req := battle.NewRequest(r.NPCA, r.NPCB)
	if r.Level != nil {
		req.Level = *r.Level
	}
	if r.MaxTurns != nil {
		req.MaxTurns = *r.MaxTurns
	}
	req.Seed = r.Seed
	return req
}

// NarrateRequest is the body of POST /battle/narrate.
type NarrateRequest struct {
	BattleLog []string `json:"battle_log" binding:"required"`
	Style     string   `json:"style,omitempty"`
	Locale    string   `json:"locale,omitempty"`
}

// QueryRequest is the body of POST /ai/query.
type QueryRequest struct {
	Question string `json:"question" binding:"required"`
}

type listNPCsResponse struct {
	NPCs []catalog.NPCTemplate `json:"npcs"`
}

func (h *Handler) simulate(c *gin.Context) {
	var body SimulateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeBadRequest(c, err)
		return
	}
	result, err := h.sim.Simulate(backendContext(c.Request), body.Battle())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) listNPCs(c *gin.Context) {
	npcs, err := h.sim.ListNPCs(backendContext(c.Request), c.Query("filter"))
	if err != nil {
		writeError(c, err)
		return
	}
	if npcs == nil {
		npcs = []catalog.NPCTemplate{}
	}
	c.JSON(http.StatusOK, listNPCsResponse{NPCs: npcs})
}

func (h *Handler) narrate(c *gin.Context) {
	var body NarrateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeBadRequest(c, err)
		return
	}
	if h.narrator == nil {
		writeError(c, narration.ErrNotConfigured)
		return
	}
	locale := strings.TrimSpace(body.Locale)
	if locale == "" {
		locale = requestLocale(c.Request)
	}
	text, err := h.narrator.Narrate(c.Request.Context(), narration.Request{
		Log:    body.BattleLog,
		Style:  body.Style,
		Locale: locale,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"narration": text})
}

func (h *Handler) askAI(c *gin.Context) {
	var body QueryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeBadRequest(c, err)
		return
	}
	if h.narrator == nil {
		writeError(c, narration.ErrNotConfigured)
		return
	}
	answer, err := h.narrator.Ask(c.Request.Context(), body.Question)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
