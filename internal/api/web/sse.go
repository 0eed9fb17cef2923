package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Pranav99t/polytask/internal/domain"
)

// Events exposes the storage change feed as server-sent events: one
// subscription per request, scoped to a task's comment thread via ?task_id=,
// streaming until the client disconnects. The presentation layer feeds these
// events into its reconciler.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) error {
	taskID, err := queryID(r, "task_id")
	if err != nil {
		return err
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("%w: streaming unsupported", errBadRequest)
	}

	feed, cancel := h.Feed.Subscribe(r.Context(), domain.KindComment, filterByTask(taskID))
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return nil
		case ev, open := <-feed:
			if !open {
				return nil
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, payload)
			flusher.Flush()
		}
	}
}
