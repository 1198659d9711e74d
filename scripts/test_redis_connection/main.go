package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

func main() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	pong, err := client.Ping(ctx).Result()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to redis at %s: %v\n", addr, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to redis at %s: %s\n", addr, pong)
}
