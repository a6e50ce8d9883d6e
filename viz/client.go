package viz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait      = 1 * time.Second
	pubResolution  = time.Millisecond * 100
	pingResolution = time.Millisecond * 200
	pongWait       = pingResolution * 4
	readDeadline   = time.Second
	writeDeadline  = time.Second
	closeGracePeriod = 10 * time.Second
)

var upgrader = websocket.Upgrader{}

// ErrPongDeadlineExceeded indicates the peer stopped responding to pings.
var ErrPongDeadlineExceeded = errors.New("viz: client disconnect, pong deadline exceeded")

// ErrSockCongestion indicates too many waiters on the socket for a given op.
var ErrSockCongestion = errors.New("viz: socket operation congested")

// client publishes a stream of GenerationSnapshot values to a single
// websocket peer, generic over T so the same read/ping/publish plumbing
// could carry any other idempotent update type in the future.
type client[T any] struct {
	updates <-chan T
	ws      *websock
	rootCtx context.Context
}

// newClient upgrades an HTTP request to a websocket and returns a
// publisher reading from updates.
func newClient[T any](updates <-chan T, w http.ResponseWriter, r *http.Request) (*client[T], error) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, err
	}
	return &client[T]{
		updates: updates,
		ws:      newWebSocket(ws),
		rootCtx: r.Context(),
	}, nil
}

// sync runs the read/ping/publish loops concurrently until the peer
// disconnects or the request context is cancelled.
func (cli *client[T]) sync() error {
	group, groupCtx := errgroup.WithContext(cli.rootCtx)

	group.Go(func() error { return cli.readMessages(groupCtx) })
	group.Go(func() error { return cli.pingPong(groupCtx) })
	group.Go(func() error { return cli.publish(groupCtx) })

	return group.Wait()
}

func (cli *client[T]) pingPong(ctx context.Context) error {
	pong := make(chan struct{})
	defer close(pong)
	cli.ws.Conn().SetPongHandler(func(_ string) error {
		pong <- struct{}{}
		return nil
	})

	pinger := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := cli.ping(ctx); err != nil {
				return err
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (cli *client[T]) ping(ctx context.Context) error {
	return cli.ws.Write(ctx, func(ws *websocket.Conn) error {
		if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil && isError(err) {
			return fmt.Errorf("ping failed: %w", err)
		}
		return nil
	})
}

func (cli *client[T]) readMessages(ctx context.Context) error {
	for {
		err := cli.ws.Read(ctx, func(ws *websocket.Conn) error {
			_, _, readErr := ws.ReadMessage()
			return readErr
		})
		if err != nil {
			return err
		}
	}
}

func (cli *client[T]) publish(ctx context.Context) error {
	lastSync := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-cli.updates:
			if !ok {
				return nil
			}
			if time.Since(lastSync) < pubResolution {
				break
			}
			lastSync = time.Now()
			err := cli.ws.Write(ctx, func(ws *websocket.Conn) error {
				if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return fmt.Errorf("failed to set deadline: %w", err)
				}
				if err := ws.WriteJSON(update); err != nil && isError(err) {
					return fmt.Errorf("publish failed: %w", err)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
	}
}

func isError(err error) bool {
	return err != nil && websocket.IsUnexpectedCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}

// websock serializes concurrent reads and writes to a websocket, which
// the underlying library requires to be single-reader/single-writer.
type websock struct {
	readSem  chan struct{}
	writeSem chan struct{}
	ws       *websocket.Conn
}

func newWebSocket(ws *websocket.Conn) *websock {
	return &websock{
		readSem:  make(chan struct{}, 1),
		writeSem: make(chan struct{}, 1),
		ws:       ws,
	}
}

func (sock *websock) Conn() *websocket.Conn {
	return sock.ws
}

func (sock *websock) Close() {
	sock.readSem <- struct{}{}
	sock.writeSem <- struct{}{}

	_ = sock.ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = sock.ws.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	sock.ws.Close()
}

func (sock *websock) Read(ctx context.Context, readFn func(*websocket.Conn) error) error {
	select {
	case <-ctx.Done():
		return nil
	case sock.readSem <- struct{}{}:
		defer func() { <-sock.readSem }()
		return readFn(sock.ws)
	case <-time.After(readDeadline):
		return ErrSockCongestion
	}
}

func (sock *websock) Write(ctx context.Context, writeFn func(*websocket.Conn) error) error {
	select {
	case <-ctx.Done():
		return nil
	case sock.writeSem <- struct{}{}:
		defer func() { <-sock.writeSem }()
		return writeFn(sock.ws)
	case <-time.After(writeDeadline):
		return ErrSockCongestion
	}
}
