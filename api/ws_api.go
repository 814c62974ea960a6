package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

// GET /battleship
func (s *Server) HandleWs(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	s.processSessionRequests(r.Context(), s.sessionManager.GenerateNewSession(conn))
}

func (s *Server) processSessionRequests(ctx context.Context, session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if session.Conn() != nil {
			session.Conn().Close()
		}
		s.sessionManager.TerminateSession(sessionId)
		log.Println("session terminated:", sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := s.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := s.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil || signal.IsAbsent() {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("code", "incoming req payload must contain 'code' field", "InvalidRequest")
			if err = s.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		var respMsg interface{}
		req := NewRequest(payload)

		switch *signal.Code {
		case mc.CodeCreateBoard:
			respMsg = req.HandleCreateBoard(ctx, s)

		case mc.CodeGetBoard:
			respMsg = req.HandleGetBoard(ctx, s)

		case mc.CodePlaceShip:
			respMsg = req.HandlePlaceShip(ctx, s)

		case mc.CodeSinkShip:
			respMsg = req.HandleSinkShip(ctx, s)

		case mc.CodeCreateGame:
			respMsg = req.HandleCreateGame(ctx, s)

		case mc.CodeGetGame:
			respMsg = req.HandleGetGame(ctx, s)

		default:
			msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			msg.AddError("code", "invalid code in the incoming payload", "InvalidRequest")
			respMsg = msg
		}

		if err := s.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
			break sessionLoop
		}
	}
}
