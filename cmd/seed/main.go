package main

import (
	"context"
	"os"

	"github.com/nandaputra/storefront-service/config"
	"github.com/nandaputra/storefront-service/internal/domain"
	"github.com/nandaputra/storefront-service/internal/repository"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	postgresDriver "github.com/nandaputra/storefront-service/internal/infrastructure/database/postgres"
)

func strPtr(s string) *string {
	return &s
}

// Seeds the default seller and demo catalog. Safe to run repeatedly.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	config := config.CreateNewConfig()
	db, err := postgresDriver.Connect(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer db.Close()

	ctx := context.Background()
	userRepo := repository.CreateUserRepository(db)
	productRepo := repository.CreateProductRepository(db)

	seller, err := userRepo.GetUserByEmail(ctx, "seller@store.com")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to look up default seller")
	}

	if seller.ID == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash seller password")
		}

		seller.ID, err = userRepo.AddUser(ctx, domain.User{
			Name:           "X & Y",
			Email:          "seller@store.com",
			HashedPassword: string(hash),
			Role:           domain.RoleSeller,
			ExternalID:     ulid.Make().String(),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create default seller")
		}
	}

	products := []domain.Product{
		{Name: "Laptop", Image: strPtr("/images/laptop.png"), Price: 999.99, SellerID: seller.ID},
		{Name: "Smartphone", Image: strPtr("/images/smartphone.png"), Price: 699.99, SellerID: seller.ID},
		{Name: "Programming Book", Image: strPtr("/images/book.png"), Price: 29.99, SellerID: seller.ID},
		{Name: "T-Shirt", Image: strPtr("/images/tshirt.jpg"), Price: 19.99, SellerID: seller.ID},
	}

	productIDs := make([]int64, 0, len(products))
	for _, product := range products {
		id, err := productRepo.UpsertProduct(ctx, product)
		if err != nil {
			log.Fatal().Err(err).Str("product", product.Name).Msg("Failed to upsert product")
		}
		productIDs = append(productIDs, id)
	}

	log.Info().
		Int64("seller", seller.ID).
		Ints64("products", productIDs).
		Msg("Database seeded")
}
