package sse

import (
	"encoding/json"
	"fmt"
	"net/http"

	"dental-lab/internal/platform/logger"
	"dental-lab/internal/store"
)

// Stream suscribe al cliente HTTP al store y le envía cada colección completa
// como evento SSE. La suscripción se cancela cuando el cliente se desconecta.
func Stream[T store.Entity](w http.ResponseWriter, r *http.Request, st *store.Store[T], log logger.Logger) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Buffer de 1 con "último gana": cada emisión es el estado completo,
	// así que un cliente lento solo se pierde estados intermedios.
	latest := make(chan []T, 1)
	sub := st.Subscribe(func(items []T) {
		select {
		case <-latest:
		default:
		}
		latest <- items
	})
	defer sub.Unsubscribe()

	log = log.With(map[string]any{"collection": st.Name(), "subscription": sub.ID()})
	log.Debug("stream opened", nil)
	defer log.Debug("stream closed", nil)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case items := <-latest:
			b, err := json.Marshal(items)
			if err != nil {
				log.Error("stream encode failed", map[string]any{"error": err})
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", st.Name(), b); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
