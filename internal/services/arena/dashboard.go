package arena

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"github.com/louisbranch/npc-arena/internal/random"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
)

func (h *Handler) dashboard(c *gin.Context) {
	view, err := h.dashboardView(c)
	if err != nil {
		h.renderError(c, view, err)
		return
	}
	render(c, http.StatusOK, Page("NPC Arena", BattleForm(view)))
}

func (h *Handler) dashboardBattle(c *gin.Context) {
	view, err := h.dashboardView(c)
	if err != nil {
		h.renderError(c, view, err)
		return
	}
	req, err := battleFromQuery(c, view)
	if err != nil {
		h.renderError(c, view, err)
		return
	}
	result, err := h.sim.Simulate(backendContext(c.Request), req)
	if err != nil {
		h.renderError(c, view, err)
		return
	}
	view.Seed = strconv.FormatInt(result.Seed, 10)
	render(c, http.StatusOK, Page(result.Winner+" wins", BattleReport(BattleView{Form: view, Result: &result})))
}

// dashboardView loads the NPC list and echoes the query back into the form.
func (h *Handler) dashboardView(c *gin.Context) (DashboardView, error) {
	view := DashboardView{
		NPCA:     strings.TrimSpace(c.Query("npc_a")),
		NPCB:     strings.TrimSpace(c.Query("npc_b")),
		Level:    battle.DefaultLevel,
		Seed:     strings.TrimSpace(c.Query("seed")),
		MaxTurns: battle.DefaultMaxTurns,
	}
	if level, err := strconv.Atoi(c.Query("level")); err == nil {
		view.Level = level
	}
	if maxTurns, err := strconv.Atoi(c.Query("max_turns")); err == nil {
		view.MaxTurns = maxTurns
	}
	npcs, err := h.sim.ListNPCs(backendContext(c.Request), "")
	if err != nil {
		return view, err
	}
	view.NPCs = npcs
	if view.NPCA == "" && len(npcs) > 0 {
		view.NPCA = npcs[0].Key
	}
	if view.NPCB == "" && len(npcs) > 1 {
		view.NPCB = npcs[1].Key
	}
	return view, nil
}

func battleFromQuery(c *gin.Context, view DashboardView) (battle.Request, error) {
	for _, name := range []string{"level", "max_turns"} {
		if raw := strings.TrimSpace(c.Query(name)); raw != "" {
			if _, err := strconv.Atoi(raw); err != nil {
				return battle.Request{}, apperrors.WithMetadata(apperrors.CodeInvalidArgument, name+" must be an integer", map[string]string{"Field": name})
			}
		}
	}
	req := battle.NewRequest(view.NPCA, view.NPCB)
	req.Level = view.Level
	req.MaxTurns = view.MaxTurns
	if view.Seed != "" {
		seed, err := random.ParseSeed(view.Seed)
		if err != nil {
			return battle.Request{}, err
		}
		req.Seed = &seed
	}
	return req, nil
}

func (h *Handler) renderError(c *gin.Context, view DashboardView, err error) {
	status, body := errorStatus(err, requestLocale(c.Request))
	render(c, status, Page("NPC Arena", BattleReport(BattleView{Form: view, Error: body.Message})))
}

func render(c *gin.Context, status int, component templ.Component) {
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(c.Writer, c.Request)
}
