// Command seed fills the inventory with generated books.
package main

import (
	"context"
	"flag"
	stdLog "log"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-inventory/inventory/config"
	"github.com/Astemirdum/book-inventory/inventory/internal/model"
	"github.com/Astemirdum/book-inventory/inventory/internal/repository"
	"github.com/Astemirdum/book-inventory/inventory/internal/service"
	"github.com/Astemirdum/book-inventory/inventory/migrations"
	"github.com/Astemirdum/book-inventory/pkg/kafka"
	"github.com/Astemirdum/book-inventory/pkg/logger"
	"github.com/Astemirdum/book-inventory/pkg/postgres"
)

func main() {
	n := flag.Int("n", 20, "number of books to add")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	_ = godotenv.Load() //nolint:errcheck
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "seed")

	ctx := context.Background()
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		stdLog.Fatal("db init ", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		stdLog.Fatal("repository ", err)
	}
	svc := service.NewService(repo, kafka.NopPublisher{}, log)

	gofakeit.Seed(*seed)
	for i := 0; i < *n; i++ {
		book, err := svc.CreateBook(ctx, model.BookCreateForm{
			Title:         gofakeit.Sentence(3),
			Author:        gofakeit.Name(),
			NumberOfPages: gofakeit.Number(1, 1500),
		})
		if err != nil {
			log.Error("create book", zap.Error(err))
			continue
		}
		log.Info("book added", zap.Int("id", book.ID), zap.String("title", book.Title))
	}
}
