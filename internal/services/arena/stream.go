package arena

import (
	"encoding/json"
	"errors"
	"io"
	"log"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"golang.org/x/net/websocket"
)

// Stream frame types.
const (
	FrameLog    = "log"
	FrameResult = "result"
	FrameError  = "error"
)

// StreamFrame is one message sent to a battle stream client.
type StreamFrame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// stream reads one simulate request, then sends every log line followed by
// the full result. Failures are reported as a single error frame.
func (h *Handler) stream(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	request := conn.Request()
	locale := requestLocale(request)
	encoder := json.NewEncoder(conn)
	sendError := func(err error) {
		_, body := errorStatus(err, locale)
		if sendErr := encoder.Encode(StreamFrame{Type: FrameError, Payload: body}); sendErr != nil {
			log.Printf("arena: stream send error frame: %v", sendErr)
		}
	}

	var body SimulateRequest
	if err := json.NewDecoder(conn).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return
		}
		sendError(apperrors.Wrap(apperrors.CodeInvalidArgument, "decode simulate request", err))
		return
	}
	if body.NPCA == "" || body.NPCB == "" {
		sendError(apperrors.New(apperrors.CodeInvalidArgument, "npc_a and npc_b are required"))
		return
	}

	result, err := h.sim.Simulate(backendContext(request), body.Battle())
	if err != nil {
		sendError(err)
		return
	}
	for _, line := range result.Log {
		if err := encoder.Encode(StreamFrame{Type: FrameLog, Payload: line}); err != nil {
			log.Printf("arena: stream send log frame: %v", err)
			return
		}
	}
	if err := encoder.Encode(StreamFrame{Type: FrameResult, Payload: result}); err != nil {
		log.Printf("arena: stream send result frame: %v", err)
	}
}
