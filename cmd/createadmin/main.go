// Command createadmin bootstraps an admin user. Admin accounts are never
// created through the API; run this once against the target database.
//
//	DATABASE_URL=postgres://... go run ./cmd/createadmin -username admin -password 'secret1234'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dlclark/regexp2"
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sibaq/festival-api/internal/config"
	"github.com/sibaq/festival-api/internal/db"
	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository"
	"github.com/sibaq/festival-api/internal/repository/dao"
)

// At least 8 characters with a letter and a digit. regexp2 because the
// lookaheads are not expressible in Go's regexp.
const passwordPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

const bcryptCost = 12

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "createadmin:", err)
		os.Exit(1)
	}
}

func run() error {
	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		return errors.New("username and password are required")
	}
	if len(*username) > 50 {
		return errors.New("username must be at most 50 characters")
	}

	re := regexp2.MustCompile(passwordPattern, regexp2.None)
	ok, err := re.MatchString(*password)
	if err != nil {
		return fmt.Errorf("re.MatchString -> %w", err)
	}
	if !ok {
		return errors.New("password must be at least 8 characters and contain a letter and a digit")
	}

	postgresDB, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database -> %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	repo := repository.NewUserRepository(dao.NewUserDAO(postgresDB))
	created, err := repo.Create(context.Background(), domain.User{
		Username: *username,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return fmt.Errorf("user %q already exists", *username)
		}

		return fmt.Errorf("repo.Create -> %w", err)
	}

	fmt.Printf("created admin user %q (id %d)\n", created.Username, created.ID)

	return nil
}

func openDB() (*gorm.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return db.OpenPostgresWithURL(url)
	}

	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return nil, fmt.Errorf("config.Load -> %w", err)
	}

	return db.OpenPostgres(conf.Postgres)
}
