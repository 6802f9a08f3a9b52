package api

import (
	"net/http"
	"time"

	"market-data-lab/internal/observability"
)

// handleQuoteStream upgrades to WebSocket and pushes a fresh market
// snapshot every stream interval until the client disconnects. The stream
// bypasses the result cache: a cached snapshot would freeze the feed for a
// full TTL, and stream consumers want the live drift.
func (s *Server) handleQuoteStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("stream upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	observability.DefaultMetrics.StreamClients.Inc()
	defer observability.DefaultMetrics.StreamClients.Dec()

	// Drain client frames so close messages are processed; the feed is
	// one-directional.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.streamInterval)
	defer ticker.Stop()

	for {
		quotes, err := s.engine.FreshSnapshot()
		if err != nil {
			s.logger.Printf("stream snapshot failed: %v", err)
			return
		}
		if err := conn.WriteJSON(quotes); err != nil {
			observability.DefaultMetrics.StreamSendError.Inc()
			return
		}
		observability.RecordQuotesStreamed(len(quotes))

		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
