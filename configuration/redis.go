package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the redis server, retrying a few times so the
// service survives redis coming up slightly later than it does.
func InitRedis(addr string) *redis.Client {
	var client *redis.Client
	var err error
	MaxRetries := 5
	RetryDelay := time.Second * 5
	for i := 0; i < MaxRetries; i++ {
		client = redis.NewClient(&redis.Options{
			Network: "tcp",
			Addr:    addr,
			DB:      0,
		})

		_, err = client.Ping(context.Background()).Result()
		if err == nil {
			break
		}

		fmt.Printf("Failed to connect to Redis (Attempt %d/%d): %s\n", i+1, MaxRetries, err.Error())
		time.Sleep(RetryDelay)
	}
	if err != nil {
		panic("Failed to connect to Redis after multiple attempts: " + err.Error())
	}
	return client
}
