package testutil

import (
	"context"
	"time"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base:  entity.Base{ID: "user1"},
		Name:  "alice",
		Email: "alice@example.com",
	}
	User2 = entity.User{
		Base:  entity.Base{ID: "user2"},
		Name:  "bob",
		Email: "bob@example.com",
	}
	User3 = entity.User{
		Base:  entity.Base{ID: "user3"},
		Name:  "carol",
		Email: "carol@example.com",
	}
	User4 = entity.User{
		Base:  entity.Base{ID: "user4"},
		Name:  "dave",
		Email: "dave@example.com",
	}
)

// user1 and user2 follow each other, so they are friends. user1 follows
// user3 one-way.
var (
	Follow1 = entity.Follow{FollowerID: User1.ID, FollowingID: User2.ID}
	Follow2 = entity.Follow{FollowerID: User2.ID, FollowingID: User1.ID}
	Follow3 = entity.Follow{FollowerID: User1.ID, FollowingID: User3.ID}
)

var fixtureBaseTime = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

var (
	Wish1 = entity.Wish{
		Base:       entity.Base{ID: "wish1", CreatedAt: fixtureBaseTime.Add(3 * time.Hour)},
		AuthorID:   User1.ID,
		Title:      "Visit Kyoto",
		Content:    "See the temples in autumn",
		Category:   entity.CategoryTravel,
		Visibility: entity.VisibilityPublic,
	}
	Wish2 = entity.Wish{
		Base:       entity.Base{ID: "wish2", CreatedAt: fixtureBaseTime.Add(4 * time.Hour)},
		AuthorID:   User2.ID,
		Title:      "Learn to cook",
		Content:    "One new recipe a week",
		Category:   entity.CategoryPersonal,
		Visibility: entity.VisibilityFriends,
	}
	Wish3 = entity.Wish{
		Base:       entity.Base{ID: "wish3", CreatedAt: fixtureBaseTime.Add(5 * time.Hour)},
		AuthorID:   User3.ID,
		Title:      "Get promoted",
		Content:    "Lead a project this year",
		Category:   entity.CategoryCareer,
		Visibility: entity.VisibilityFriends,
	}
	Wish4 = entity.Wish{
		Base:       entity.Base{ID: "wish4", CreatedAt: fixtureBaseTime.Add(6 * time.Hour)},
		AuthorID:   User2.ID,
		Title:      "Hike Patagonia",
		Content:    "Torres del Paine circuit",
		Category:   entity.CategoryTravel,
		Visibility: entity.VisibilityPublic,
	}
	Wish5 = entity.Wish{
		Base:       entity.Base{ID: "wish5", CreatedAt: fixtureBaseTime.Add(2 * time.Hour)},
		AuthorID:   User1.ID,
		Title:      "Keep a journal",
		Content:    "Write every evening",
		Category:   entity.CategoryPersonal,
		Visibility: entity.VisibilityPrivate,
	}
	Wish6 = entity.Wish{
		Base:       entity.Base{ID: "wish6", CreatedAt: fixtureBaseTime.Add(1 * time.Hour)},
		AuthorID:   User3.ID,
		Title:      "Run a marathon",
		Content:    "Under four hours",
		Category:   entity.CategoryHealth,
		Visibility: entity.VisibilityPublic,
	}
)

// CreateFixtureDb seeds the database in ctx with the fixture users, follows,
// and wishes above.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertFollows(ctx)
	insertWishes(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository(NewMockRedisClient())
	for _, user := range []entity.User{User1, User2, User3, User4} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertFollows(ctx context.Context) {
	followRepo := repository.NewFollowRepository()
	for _, follow := range []entity.Follow{Follow1, Follow2, Follow3} {
		follow := follow
		if err := followRepo.Create(ctx, &follow); err != nil {
			panic(err)
		}
	}
}

func insertWishes(ctx context.Context) {
	wishRepo := repository.NewWishRepository()
	for _, wish := range []entity.Wish{Wish1, Wish2, Wish3, Wish4, Wish5, Wish6} {
		wish := wish
		if err := wishRepo.Create(ctx, &wish); err != nil {
			panic(err)
		}
	}
}
