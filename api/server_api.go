package api

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-placement/internal/config"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

var (
	defaultPort = 8000

	// dev accepts any origin so local frontends can connect
	devUpgrader = websocket.Upgrader{
		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	// nil CheckOrigin rejects a cross-origin Origin header
	prodUpgrader = websocket.Upgrader{
		HandshakeTimeout: time.Second * 5,

		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
	}
)

// Analytics counts placement decisions per server. Failures
// are logged by the caller and never reach the client.
type Analytics interface {
	IncrementShipsPlacedCount(ctx context.Context, serverIpNet pqtype.Inet) error
	IncrementPlacementsRejectedCount(ctx context.Context, serverIpNet pqtype.Inet) error
}

type Server struct {
	port           int
	stage          string
	boards         mb.BoardManager
	games          mb.GameManager
	sessionManager mc.SessionManager
	analytics      Analytics
	ipnet          net.IPNet
	placementOpts  []mb.PlacementOption
}

type Option func(*Server) error

func NewServer(boards mb.BoardManager, optFuncs ...Option) *Server {
	server := Server{
		port:   defaultPort,
		stage:  config.StageDev,
		boards: boards,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}

	if server.games == nil {
		server.games = mb.NewBattleshipGameManager(boards)
	}
	if server.sessionManager == nil {
		server.sessionManager = mc.NewBattleshipSessionManager(mc.DefaultCleanupInterval)
	}
	server.ipnet = getServerIpNet()

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("port out of range: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != config.StageProd && stage != config.StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		s.stage = stage
		return nil
	}
}

func WithAnalytics(analytics Analytics) Option {
	return func(s *Server) error {
		s.analytics = analytics
		return nil
	}
}

func WithGameManager(games mb.GameManager) Option {
	return func(s *Server) error {
		s.games = games
		return nil
	}
}

func WithSessionManager(sessionManager mc.SessionManager) Option {
	return func(s *Server) error {
		s.sessionManager = sessionManager
		return nil
	}
}

func WithStrictShipLength(strict bool) Option {
	return func(s *Server) error {
		if strict {
			s.placementOpts = append(s.placementOpts, mb.WithStrictLength())
		}
		return nil
	}
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

// Expose this method to use it in testing
func (s *Server) GetIpNet() net.IPNet {
	return s.ipnet
}

func (s *Server) SessionManager() mc.SessionManager {
	return s.sessionManager
}

func (s *Server) upgrader() *websocket.Upgrader {
	if s.stage == config.StageProd {
		return &prodUpgrader
	}
	return &devUpgrader
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /battleship", s.HandleWs)
	mux.HandleFunc("POST /games", s.HandleCreateGame)
	mux.HandleFunc("GET /games/{gameId}", s.HandleGetGame)
	mux.HandleFunc("PUT /games/{gameId}/boards/{boardId}", s.HandlePlaceShipInGame)
	mux.HandleFunc("POST /boards", s.HandleCreateBoard)
	mux.HandleFunc("GET /boards/{boardId}", s.HandleGetBoard)
	mux.HandleFunc("PUT /boards/{boardId}", s.HandlePlaceShip)
	mux.HandleFunc("PUT /boards/{boardId}/ships/{shipId}/sunk", s.HandleSinkShip)
	return mux
}

// First non-loopback IPv4 of an interface that is up. Falls
// back to loopback so analytics still has a key.
func getServerIpNet() net.IPNet {
	fallback := net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println("failed to list network interfaces:", err)
		return fallback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return fallback
}
