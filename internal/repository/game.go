package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
}

// maxUpdateRetries bounds optimistic retries; a conflict means another writer succeeded.
const maxUpdateRetries = 16

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository stores games in redis; a zero ttl keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(game.ID), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return that.get(ctx, that.client, id)
}

func (that *dbGame) get(ctx context.Context, db getter, id string) (*entity.Game, error) {
	response, err := db.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, apperror.ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if _, err = existingGame.Position(); err != nil {
		return &entity.Game{}, fmt.Errorf("stored game %s: %w", id, err)
	}

	return &existingGame, nil
}

// Update loads the game, runs apply on it and stores the result under WATCH; a conflicting
// write retries the whole cycle.
// When apply fails nothing is stored and the loaded game is returned with its error.
func (that *dbGame) Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKey(id)

	var game *entity.Game
	txf := func(tx *redis.Tx) error {
		var err error
		if game, err = that.get(ctx, tx, id); err != nil {
			game = nil
			return err
		}

		if err = apply(game); err != nil {
			return err
		}

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, that.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return game, err
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrConcurrentUpdate, id)
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}
