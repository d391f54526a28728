package testutil

import (
	"context"
	"database/sql"

	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/internal/repository"
	"github.com/homequest/backend/pkg/idutil"
)

var (
	User1 = entity.User{
		Base:      entity.Base{ID: "user1"},
		Name:      "Mina",
		SiblingID: sql.NullString{Valid: true, String: "user2"},
	}

	User2 = entity.User{
		Base:      entity.Base{ID: "user2"},
		Name:      "Theo",
		SiblingID: sql.NullString{Valid: true, String: "user1"},
	}

	// User3 has no sibling.
	User3 = entity.User{
		Base: entity.Base{ID: "user3"},
		Name: "Solo",
	}
)

// CreateFixtureDb seeds the context database with the fixture users.
func CreateFixtureDb(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3} {
		u := user
		if err := userRepo.Create(ctx, &u); err != nil {
			panic(err)
		}
	}
}

func NewIDGenerator() *idutil.Generator {
	generator, err := idutil.NewGenerator(1)
	if err != nil {
		panic(err)
	}

	return generator
}
