package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisClient connects to Redis and verifies the connection with a ping.
func RedisClient(redisHost, redisPort, redisUsername, redisPassword string, logger *zap.Logger) (*redis.Client, error) {
	redisURL := fmt.Sprintf("%s:%s", redisHost, redisPort)

	// Only set Username & password if authorization enabled
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✨ Connected to Redis", zap.String("addr", redisURL))
	return client, nil
}
