package server

import (
	"encoding/json"
	"fmt"

	"github.com/veldt-dev/veldt/pkg/vdom"
)

// Frame types exchanged over the live-update socket.
const (
	FramePatches = "patches" // server -> client: merge patches
	FrameEvent   = "event"   // client -> server: state write
	FrameError   = "error"   // server -> client: rejected event
)

// Frame is the JSON envelope for socket messages.
type Frame struct {
	Type    string          `json:"type"`
	Patches []vdom.Patch    `json:"patches,omitempty"`
	Event   *Event          `json:"event,omitempty"`
	Message string          `json:"message,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// Event is a client request to write one key of the session state.
type Event struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// EncodeFrame serializes a frame.
func EncodeFrame(f *Frame) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("server: encode %s frame: %w", f.Type, err)
	}
	return data, nil
}

// DecodeFrame parses a frame and validates its type.
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("server: decode frame: %w", err)
	}
	switch f.Type {
	case FramePatches, FrameEvent, FrameError:
	default:
		return nil, fmt.Errorf("server: unknown frame type %q", f.Type)
	}
	if f.Type == FrameEvent && (f.Event == nil || f.Event.Key == "") {
		return nil, fmt.Errorf("server: event frame without key")
	}
	f.Raw = data
	return &f, nil
}
