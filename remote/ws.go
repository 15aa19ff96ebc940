package remote

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"torus-snake/controls"
)

const writeWait = 2 * time.Second

// wsMessage is one client message. Only the first non-empty field is used.
type wsMessage struct {
	Key    string `json:"key,omitempty"`
	Action string `json:"action,omitempty"`
	Speed  int    `json:"speed,omitempty"`
}

// serveWS pushes every published frame to the client and applies the
// messages it sends until either side closes.
func (s *Server) serveWS(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("ws upgrade", "err", err)
		return
	}
	defer conn.Close()

	frames, unsubscribe := s.session.Subscribe()
	s.logger.Info("ws connected", "remote", conn.RemoteAddr().String())

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case f, ok := <-frames:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(f); err != nil {
					// Unblocks the reader below.
					conn.Close()
					return
				}
			case <-s.done:
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				conn.Close()
				return
			}
		}
	}()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("ws read", "err", err)
			}
			break
		}
		s.apply(msg)
	}

	unsubscribe()
	<-writerDone
	s.logger.Info("ws disconnected", "remote", conn.RemoteAddr().String())
}

func (s *Server) apply(msg wsMessage) {
	switch {
	case msg.Key != "":
		s.handleKey(msg.Key)
	case msg.Action != "":
		a := controls.ParseAction(msg.Action)
		if !controls.Apply(s.session, a) {
			s.logger.Debug("ws unknown action", "action", msg.Action)
		}
	case msg.Speed != 0:
		s.session.SetSpeed(msg.Speed)
	}
}
