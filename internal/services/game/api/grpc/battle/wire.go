package battle

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"github.com/louisbranch/npc-arena/internal/random"
	battledomain "github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// maxExactSeed is the largest magnitude a double carries without rounding.
const maxExactSeed = 1 << 53

// resultWire replaces the numeric seed with its decimal string.
type resultWire struct {
	battledomain.Result
	Seed string `json:"seed"`
}

type listNpcsWire struct {
	NPCs []catalog.NPCTemplate `json:"npcs"`
}

func encodeSimulateRequest(req battledomain.Request) (*structpb.Struct, error) {
	fields := map[string]any{
		"npc_a":     req.NPCA,
		"npc_b":     req.NPCB,
		"level":     req.Level,
		"max_turns": req.MaxTurns,
	}
	if req.Seed != nil {
		fields["seed"] = strconv.FormatInt(*req.Seed, 10)
	}
	return structpb.NewStruct(fields)
}

func decodeSimulateRequest(in *structpb.Struct) (battledomain.Request, error) {
	if in == nil {
		return battledomain.Request{}, apperrors.New(apperrors.CodeInvalidArgument, "simulate request is required")
	}
	fields := in.GetFields()

	req := battledomain.NewRequest(fields["npc_a"].GetStringValue(), fields["npc_b"].GetStringValue())
	for _, name := range []string{"npc_a", "npc_b"} {
		if _, ok := fields[name].GetKind().(*structpb.Value_StringValue); !ok {
			return battledomain.Request{}, invalidField(name, "%s must be a string", name)
		}
	}

	if value, ok := present(fields, "level"); ok {
		level, err := intValue("level", value)
		if err != nil {
			return battledomain.Request{}, err
		}
		req.Level = level
	}
	if value, ok := present(fields, "max_turns"); ok {
		maxTurns, err := intValue("max_turns", value)
		if err != nil {
			return battledomain.Request{}, err
		}
		req.MaxTurns = maxTurns
	}
	if value, ok := present(fields, "seed"); ok {
		seed, err := seedValue(value)
		if err != nil {
			return battledomain.Request{}, err
		}
		req.Seed = &seed
	}
	return req, nil
}

func encodeResult(result battledomain.Result) (*structpb.Struct, error) {
	return toStruct(resultWire{Result: result, Seed: strconv.FormatInt(result.Seed, 10)})
}

func decodeResult(in *structpb.Struct) (battledomain.Result, error) {
	var wire resultWire
	if err := fromStruct(in, &wire); err != nil {
		return battledomain.Result{}, err
	}
	seed, err := random.ParseSeed(wire.Seed)
	if err != nil {
		return battledomain.Result{}, fmt.Errorf("decode result seed: %w", err)
	}
	result := wire.Result
	result.Seed = seed
	return result, nil
}

func encodeNPCs(npcs []catalog.NPCTemplate) (*structpb.Struct, error) {
	if npcs == nil {
		npcs = []catalog.NPCTemplate{}
	}
	return toStruct(listNpcsWire{NPCs: npcs})
}

func decodeNPCs(in *structpb.Struct) ([]catalog.NPCTemplate, error) {
	var wire listNpcsWire
	if err := fromStruct(in, &wire); err != nil {
		return nil, err
	}
	if wire.NPCs == nil {
		wire.NPCs = []catalog.NPCTemplate{}
	}
	return wire.NPCs, nil
}

func toStruct(value any) (*structpb.Struct, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("convert payload to struct: %w", err)
	}
	return out, nil
}

func fromStruct(in *structpb.Struct, target any) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	data, err := protojson.Marshal(in)
	if err != nil {
		return fmt.Errorf("convert struct to payload: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	return nil
}

// present returns the field unless it is missing or null.
func present(fields map[string]*structpb.Value, name string) (*structpb.Value, bool) {
	value, ok := fields[name]
	if !ok || value == nil {
		return nil, false
	}
	if _, isNull := value.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, false
	}
	return value, true
}

func intValue(name string, value *structpb.Value) (int, error) {
	number, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, invalidField(name, "%s must be a number", name)
	}
	n := number.NumberValue
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return 0, invalidField(name, "%s must be a 32-bit integer", name)
	}
	return int(n), nil
}

func seedValue(value *structpb.Value) (int64, error) {
	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		return random.ParseSeed(kind.StringValue)
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) {
			return 0, invalidField("seed", "seed must be an integer")
		}
		if math.Abs(n) > maxExactSeed {
			return 0, apperrors.WithMetadata(apperrors.CodeSeedOutOfRange, "numeric seed exceeds 2^53; send it as a string", map[string]string{"Field": "seed"})
		}
		return int64(n), nil
	default:
		return 0, invalidField("seed", "seed must be a string or number")
	}
}

func invalidField(field, format string, args ...any) error {
	return apperrors.WithMetadata(apperrors.CodeInvalidArgument, fmt.Sprintf(format, args...), map[string]string{"Field": field})
}
