package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rootdex/internal/config"
	"rootdex/internal/db"
	"rootdex/internal/model"
	"rootdex/internal/repository"
)

const bcryptCost = 10

// Seeds the admin user from ADMIN_USERNAME plus either ADMIN_PASSWORD_HASH
// (a ready bcrypt hash) or ADMIN_PASSWORD (hashed here). Re-running updates
// the existing user's hash instead of failing.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash := cfg.AdminPasswordHash
	if hash == "" {
		if cfg.AdminPassword == "" {
			log.Fatal("Set ADMIN_PASSWORD_HASH or ADMIN_PASSWORD to seed the admin user")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcryptCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		hash = string(hashed)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := userRepo.FindByUsername(ctx, cfg.AdminUsername)
	switch {
	case err == nil:
		existing.PasswordHash = hash
		if err := userRepo.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin user: %v", err)
		}
		log.Printf("Updated admin user %q", cfg.AdminUsername)
	case err == gorm.ErrRecordNotFound:
		user := &model.User{
			Username:     cfg.AdminUsername,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %q", cfg.AdminUsername)
	default:
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	log.Println("Seed completed successfully!")
}
