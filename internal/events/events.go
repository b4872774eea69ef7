package events

import (
	"encoding/json"
	"time"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// SearchCompleted is published after a search finishes so the UI can
// refresh history panels without polling.
func SearchCompleted(reqID, query string, results int) string {
	return MakeEvent(reqID, "search_completed", 1, map[string]any{
		"query":   query,
		"results": results,
	})
}

// SnapshotUpdated is published when a fresh job snapshot lands.
func SnapshotUpdated(count int) string {
	return MakeEvent("", "snapshot_updated", 1, map[string]any{
		"jobs": count,
	})
}
