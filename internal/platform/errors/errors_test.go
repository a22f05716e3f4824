package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeMappings(t *testing.T) {
	tests := []struct {
		code Code
		grpc codes.Code
		http int
	}{
		{code: CodeNPCNotFound, grpc: codes.NotFound, http: http.StatusNotFound},
		{code: CodeMoveNotFound, grpc: codes.NotFound, http: http.StatusNotFound},
		{code: CodeInvalidArgument, grpc: codes.InvalidArgument, http: http.StatusBadRequest},
		{code: CodeFilterInvalid, grpc: codes.InvalidArgument, http: http.StatusBadRequest},
		{code: CodeCatalogInvalid, grpc: codes.FailedPrecondition, http: http.StatusConflict},
		{code: CodeNarrationUnavailable, grpc: codes.Unavailable, http: http.StatusServiceUnavailable},
		{code: CodeNarrationFailed, grpc: codes.Unknown, http: http.StatusBadGateway},
		{code: CodeUnknown, grpc: codes.Internal, http: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := tc.code.GRPCCode(); got != tc.grpc {
				t.Fatalf("GRPCCode() = %v, want %v", got, tc.grpc)
			}
			if got := tc.code.HTTPStatus(); got != tc.http {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.http)
			}
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("lookup: %w", WithMetadata(CodeNPCNotFound, "npc not found: x", map[string]string{"Key": "x"}))
	if !stderrors.Is(err, New(CodeNPCNotFound, "")) {
		t.Fatal("expected code match through wrapping")
	}
	if stderrors.Is(err, New(CodeMoveNotFound, "")) {
		t.Fatal("did not expect match for different code")
	}
	if GetCode(err) != CodeNPCNotFound {
		t.Fatalf("GetCode = %q", GetCode(err))
	}
	if GetCode(stderrors.New("plain")) != CodeUnknown {
		t.Fatal("expected unknown code for plain errors")
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := stderrors.New("disk")
	err := Wrap(CodeCatalogInvalid, "load catalog", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestUserMessageLocalized(t *testing.T) {
	err := WithMetadata(CodeNPCNotFound, "npc not found", map[string]string{"Key": "ghost"})

	if got := err.UserMessage("en-US"); got != `NPC "ghost" does not exist.` {
		t.Fatalf("en message = %q", got)
	}
	if got := err.UserMessage("pt-BR"); got != `O NPC "ghost" não existe.` {
		t.Fatalf("pt-BR message = %q", got)
	}
	if got := New(CodeNarrationFailed, "x").UserMessage("not a locale!"); got != "Narration failed." {
		t.Fatalf("fallback message = %q", got)
	}
}

func TestGRPCStatusRoundTrip(t *testing.T) {
	original := WithMetadata(CodeNPCNotFound, "npc not found: ghost", map[string]string{"Key": "ghost"})

	grpcErr := original.ToGRPCStatus("en")
	st, ok := status.FromError(grpcErr)
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("status code = %v", st.Code())
	}
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		if lm, ok := detail.(*errdetails.LocalizedMessage); ok {
			localized = lm
		}
	}
	if localized == nil || localized.GetMessage() != `NPC "ghost" does not exist.` {
		t.Fatalf("unexpected localized message %+v", localized)
	}

	back := FromGRPCStatus(grpcErr)
	if GetCode(back) != CodeNPCNotFound {
		t.Fatalf("round trip code = %q", GetCode(back))
	}
	if back.Error() != "npc not found: ghost" {
		t.Fatalf("round trip message = %q", back.Error())
	}
}

func TestFromGRPCStatusPassesThroughForeignErrors(t *testing.T) {
	plain := status.Error(codes.Unavailable, "down")
	if got := FromGRPCStatus(plain); got != plain {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
