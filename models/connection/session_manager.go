package connection

import (
	"context"
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

const DefaultCleanupInterval = time.Minute * 20

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	CleanupPeriodically(ctx context.Context)
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

func NewBattleshipSessionManager(cleanupInterval time.Duration) *BattleshipSessionManager {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	return &BattleshipSessionManager{
		sessions:        make(map[string]*Session, 10),
		cleanupInterval: cleanupInterval,
	}
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs || session == nil {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}
	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	return session.writeToConnWithRetry(msg, msgType)
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		if session.handleReadFromConnErr(err, retries) == ConnLoopContinue {
			retries++
			continue
		}
		return -1, []byte{}, err
	}
}

// Sessions older than the cleanup interval are considered
// stale and dropped so no dangling connection is kept around.
func (bsm *BattleshipSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bsm.cleanupStale(time.Now())
		}
	}
}

func (bsm *BattleshipSessionManager) cleanupStale(now time.Time) int {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	removed := 0
	for id, session := range bsm.sessions {
		if now.Sub(session.createdAt) > bsm.cleanupInterval {
			if session.conn != nil {
				_ = session.conn.Close()
			}
			delete(bsm.sessions, id)
			log.Printf("removed stale session: %s", id)
			removed++
		}
	}
	return removed
}
