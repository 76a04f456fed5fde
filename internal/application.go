package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/heuristic"
	"github.com/rocketscienceinc/tictactoe-engine/internal/policy"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	bot, evaluator, err := NewBot(logger, conf.Bot)
	if err != nil {
		return fmt.Errorf("could not build bot: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage, conf.Redis.TTL)
	gameUseCase := usecase.NewGameManager(logger, gameRepo, bot, evaluator)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameUseCase)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// NewBot builds the three opponents from the bot configuration.
func NewBot(logger *slog.Logger, conf config.Bot) (service.BotService, *heuristic.Evaluator, error) {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	networkConfig := policy.DefaultNetworkConfig()
	if conf.NetworkPath != "" {
		loaded, err := policy.LoadNetworkConfig(conf.NetworkPath)
		if err != nil {
			return nil, nil, err
		}
		networkConfig = loaded
	} else {
		if len(conf.HiddenLayers) > 0 {
			networkConfig.HiddenLayers = conf.HiddenLayers
		}
		networkConfig.Stochastic = conf.Stochastic
	}

	// the network samples from its own source; each *rand.Rand is guarded by its owner
	network, err := policy.NewNetwork(networkConfig, rand.New(rand.NewSource(seed+1)))
	if err != nil {
		return nil, nil, fmt.Errorf("could not build network: %w", err)
	}

	logger.Info("bot configured",
		"seed", seed,
		"network", network.Name(),
		"preferred", entity.Move{Row: conf.PreferredRow, Col: conf.PreferredCol}.String())

	evaluator := heuristic.Default()
	bot := service.NewBotService(
		logger,
		evaluator,
		network,
		entity.Move{Row: conf.PreferredRow, Col: conf.PreferredCol},
		rand.New(rand.NewSource(seed)),
	)

	return bot, evaluator, nil
}
