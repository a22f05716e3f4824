package arena

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	platformgrpc "github.com/louisbranch/npc-arena/internal/platform/grpc"
	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	"github.com/louisbranch/npc-arena/internal/services/narration"
	"golang.org/x/net/websocket"
	"golang.org/x/text/language"
	"google.golang.org/grpc/metadata"
)

// Handler holds the dependencies shared by every route.
type Handler struct {
	sim      battlegrpc.Simulator
	narrator narration.Narrator
}

// NewHandler builds the arena routes.
func NewHandler(sim battlegrpc.Simulator, narrator narration.Narrator) http.Handler {
	h := &Handler{sim: sim, narrator: narrator}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), allowCORS())

	router.GET("/", h.root)
	router.GET("/health", h.health)
	router.GET("/npcs", h.listNPCs)
	router.POST("/battle/simulate", h.simulate)
	router.POST("/battle/narrate", h.narrate)
	router.POST("/ai/query", h.askAI)
	router.GET("/battle/stream", gin.WrapH(websocket.Handler(h.stream)))
	router.GET("/dashboard", h.dashboard)
	router.GET("/dashboard/battle", h.dashboardBattle)
	return router
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "NPC Arena server running."})
}

func (h *Handler) health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// requestLogger logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("arena: %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}

// allowCORS lets browser tools on any origin call the API.
func allowCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept-Language")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestLocale returns the preferred Accept-Language tag, or "" when the
// header is absent or malformed.
func requestLocale(r *http.Request) string {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

// backendContext carries the caller's locale to a remote game server so its
// error messages are rendered in that language.
func backendContext(r *http.Request) context.Context {
	ctx := r.Context()
	if locale := strings.TrimSpace(requestLocale(r)); locale != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, platformgrpc.LocaleMetadataKey, locale)
	}
	return ctx
}
