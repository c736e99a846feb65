package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/config"
	"stockroom/internal/domain"
	"stockroom/internal/infrastructure/mysql"
	"stockroom/internal/product"
	userrepo "stockroom/internal/user/repository"
)

// Seeds one user per role and a small catalog for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	users := userrepo.NewMySQLUserRepository(db)
	for _, u := range []domain.User{
		{Name: "Admin User", Email: "admin@example.com", Password: string(hash), Role: domain.RoleAdmin},
		{Name: "Manager User", Email: "manager@example.com", Password: string(hash), Role: domain.RoleManager},
		{Name: "Staff User", Email: "staff@example.com", Password: string(hash), Role: domain.RoleStaff},
	} {
		if _, err := users.Insert(ctx, u); err != nil {
			log.Printf("seeding user %s: %v", u.Email, err)
		}
	}
	log.Println("users seeded")

	products := product.NewMySQLProductRepository(db)
	for _, p := range []domain.Product{
		{Name: "Laptop", Price: 120000, Stock: 50, MinStock: 10, Description: "High performance laptop"},
		{Name: "Mouse", Price: 2500, Stock: 5, MinStock: 10, Description: "Wireless mouse"}, // low stock
		{Name: "Keyboard", Price: 4500, Stock: 100, MinStock: 15, Description: "Mechanical keyboard"},
		{Name: "Monitor", Price: 30000, Stock: 8, MinStock: 5, Description: "4K Monitor"},
	} {
		if _, err := products.Insert(ctx, p); err != nil {
			log.Printf("seeding product %s: %v", p.Name, err)
		}
	}
	log.Println("products seeded")
}
