package connection

import (
	"testing"
	"time"
)

func TestSessionManagerLifecycle(t *testing.T) {
	bsm := NewBattleshipSessionManager(0)
	if bsm.cleanupInterval != DefaultCleanupInterval {
		t.Fatalf("expected default interval: %s\tgot: %s", DefaultCleanupInterval, bsm.cleanupInterval)
	}

	session := bsm.GenerateNewSession(nil)
	if session.Id() == "" {
		t.Fatal("session must get an id")
	}

	found, err := bsm.FindSession(session.Id())
	if err != nil {
		t.Fatal(err)
	}
	if found != session {
		t.Fatal("found a different session")
	}

	bsm.TerminateSession(session.Id())
	if _, err := bsm.FindSession(session.Id()); err == nil {
		t.Fatal("terminated session must not be found")
	}
}

func TestSessionManagerCleanupStale(t *testing.T) {
	bsm := NewBattleshipSessionManager(time.Minute)

	stale := bsm.GenerateNewSession(nil)
	stale.createdAt = time.Now().Add(-time.Hour)
	fresh := bsm.GenerateNewSession(nil)

	if removed := bsm.cleanupStale(time.Now()); removed != 1 {
		t.Fatalf("expected removed: %d\tgot: %d", 1, removed)
	}
	if _, err := bsm.FindSession(stale.Id()); err == nil {
		t.Fatal("stale session should be gone")
	}
	if _, err := bsm.FindSession(fresh.Id()); err != nil {
		t.Fatal("fresh session should still exist")
	}
}

func TestWriteToSessionConnInvalidType(t *testing.T) {
	bsm := NewBattleshipSessionManager(DefaultCleanupInterval)
	session := NewSession("no-conn", nil)

	tests := []struct {
		name    string
		msg     interface{}
		msgType uint8
	}{
		{name: "bytes type with a struct", msg: struct{}{}, msgType: MessageTypeBytes},
		{name: "unknown message type", msg: []byte("hi"), msgType: 9},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := bsm.WriteToSessionConn(session, test.msg, test.msgType)

			connErr, ok := err.(ConnErr)
			if !ok {
				t.Fatalf("expected ConnErr\tgot: %T", err)
			}
			if connErr.Code() != ConnInvalidMsgType {
				t.Fatalf("expected code: %d\tgot: %d", ConnInvalidMsgType, connErr.Code())
			}
		})
	}
}
