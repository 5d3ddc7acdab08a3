package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goquantum/booking/internal/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key        text PRIMARY KEY,
	data       jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
);
`

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate <up|down>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	switch os.Args[1] {
	case "up":
		if _, err := pool.Exec(ctx, schema); err != nil {
			log.Fatalf("create collections table: %v", err)
		}
		fmt.Println("OK  collections")
	case "down":
		if _, err := pool.Exec(ctx, `DROP TABLE IF EXISTS collections`); err != nil {
			log.Fatalf("drop collections table: %v", err)
		}
		fmt.Println("OK  dropped collections")
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
