package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rdvpro/backend/internal/config"
	"github.com/rdvpro/backend/internal/db"
	"github.com/rdvpro/backend/internal/repository/sqlite"
	"github.com/rdvpro/backend/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// seed_user inserts a back-office user with a bcrypt password hash. There is
// no registration endpoint; this is how accounts are provisioned.
func main() {
	name := flag.String("name", "", "User display name")
	email := flag.String("email", "", "User email (login)")
	password := flag.String("password", "", "User password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed_user -name NAME -email EMAIL -password PASSWORD")
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash error: %v\n", err)
		os.Exit(1)
	}

	repo := sqlite.New(database, nil)
	id, err := repo.CreateUser(ctx, &models.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Create user error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created: %s\n", id)
}
