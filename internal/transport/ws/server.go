package ws

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/cwrk-planet/classroom-scheduler/internal/logger"
)

var errSlowConsumer = errors.New("ws: send buffer full")

const sendBuffer = 32

type Server struct {
	upgrader  websocket.Upgrader
	hub       *Hub
	pingEvery time.Duration
}

func NewServer(hub *Hub, pingEvery time.Duration) *Server {
	if pingEvery <= 0 {
		pingEvery = 15 * time.Second
	}
	return &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingEvery: pingEvery,
	}
}

// WS endpoint: GET /ws/{topic}, topic = rooms|users|reservations
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	if !knownTopic(topic) {
		http.Error(w, "unknown topic", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		slog.LogAttrs(r.Context(), slog.LevelWarn, "ws upgrade failed",
			append(logger.AttrsFromCtx(r.Context()), slog.Any("err", err))...)
		return
	}

	c := newWsConn(conn, topic)
	_ = c.Send(Message{Type: TypeSubscribed, Payload: SubscribedPayload{Topic: topic}})
	s.hub.Add(c)
	slog.Debug("ws subscribed", slog.String("topic", topic), slog.String("remote", r.RemoteAddr))

	go s.writeLoop(c)
	s.readLoop(c)

	s.hub.Remove(c)
	if err := c.Close(); err != nil {
		slog.Debug("ws close failed", slog.String("topic", topic), slog.Any("err", err))
	}
}

// readLoop только продлевает дедлайн по pong и ждёт закрытия; входящие сообщения игнорируются.
func (s *Server) readLoop(c *wsConn) {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(4 << 10)
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writeLoop(c *wsConn) {
	ticker := time.NewTicker(s.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := c.conn.WriteJSON(msg); err != nil {
				_ = c.Close()
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				_ = c.Close()
				return
			}
		case <-c.closed:
			return
		}
	}
}

type wsConn struct {
	conn   *websocket.Conn
	topic  string
	out    chan Message
	closed chan struct{}

	closeOnce sync.Once
}

func newWsConn(c *websocket.Conn, topic string) *wsConn {
	return &wsConn{
		conn:   c,
		topic:  topic,
		out:    make(chan Message, sendBuffer),
		closed: make(chan struct{}),
	}
}

// Send не блокирует: медленный клиент теряет сообщения.
func (c *wsConn) Send(msg Message) error {
	select {
	case <-c.closed:
		return websocket.ErrCloseSent
	default:
	}
	select {
	case c.out <- msg:
		return nil
	default:
		return errSlowConsumer
	}
}

func (c *wsConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})
	return err
}

func (c *wsConn) Topic() string { return c.topic }
