package middleware

import (
	"testing"

	"github.com/mmynk/tipcalc/pkg/api"
)

func TestSessionID(t *testing.T) {
	tests := []struct {
		name string
		msgs []any
		want string
	}{
		{name: "request with id", msgs: []any{&api.SessionRequest{SessionID: "a"}}, want: "a"},
		{name: "falls through to response", msgs: []any{&api.CreateSessionRequest{}, &api.SessionResponse{SessionID: "b"}}, want: "b"},
		{name: "first non-empty wins", msgs: []any{&api.ChangeBillRequest{SessionID: "c"}, &api.SessionResponse{SessionID: "d"}}, want: "c"},
		{name: "empty id skipped", msgs: []any{&api.MoveSliderRequest{}, &api.SubmitResponse{SessionID: "e"}}, want: "e"},
		{name: "nil message", msgs: []any{(*api.SessionRequest)(nil)}, want: ""},
		{name: "no messages", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sessionID(tt.msgs...); got != tt.want {
				t.Errorf("sessionID() = %q, want %q", got, tt.want)
			}
		})
	}
}
