package viz

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	channerics "github.com/niceyeti/channerics/channels"
)

// Server serves a single realtime view of a running evolutionary search:
// an index page plus a websocket streaming GenerationSnapshot values. This
// is a development aid, not a multi-tenant dashboard.
type Server struct {
	router     *mux.Router
	addr       string
	wsUpdates  <-chan GenerationSnapshot
	latest     atomic.Value // GenerationSnapshot
}

// NewServer wires routes and splits the incoming snapshot stream in two:
// one branch feeds the websocket publisher, the other keeps `latest` fresh
// for the plain JSON endpoint. ctx bounds the lifetime of that fan-out.
func NewServer(ctx context.Context, addr string, updates <-chan GenerationSnapshot) *Server {
	branches := channerics.Broadcast(ctx.Done(), updates, 2)

	s := &Server{
		router:    mux.NewRouter(),
		addr:      addr,
		wsUpdates: branches[0],
	}
	s.latest.Store(GenerationSnapshot{})

	go func() {
		for snap := range channerics.OrDone(ctx.Done(), branches[1]) {
			s.latest.Store(snap)
		}
	}()

	s.router.HandleFunc("/", s.serveIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.serveWebsocket)
	s.router.HandleFunc("/api/snapshot", s.serveSnapshotJSON).Methods(http.MethodGet)
	return s
}

// Serve blocks, serving the view over HTTP until an unrecoverable error.
func (s *Server) Serve() error {
	if err := http.ListenAndServe(s.addr, s.router); err != nil {
		return fmt.Errorf("viz: serve: %w", err)
	}
	return nil
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	cli, err := newClient(s.wsUpdates, w, r)
	if err != nil {
		log.Println("viz: upgrade failed:", err)
		return
	}
	defer cli.ws.Close()
	if err := cli.sync(); err != nil {
		log.Println("viz: client sync ended:", err)
	}
}

func (s *Server) serveSnapshotJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	snap, _ := s.latest.Load().(GenerationSnapshot)
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		log.Println("viz: snapshot encode failed:", err)
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>mars lander search</title></head>
<body>
<h1>generation <span id="gen">-</span></h1>
<pre id="landers"></pre>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (evt) => {
  const snap = JSON.parse(evt.data);
  document.getElementById("gen").textContent = snap.generation;
  document.getElementById("landers").textContent = JSON.stringify(snap.landers, null, 2);
};
</script>
</body>
</html>`

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	t := template.Must(template.New("index").Parse(indexHTML))
	if err := t.Execute(w, nil); err != nil {
		log.Println("viz: template execute failed:", err)
	}
}
