package entity

import (
	"database/sql"

	"github.com/wishwall/backend/pkg/enum"
)

type WishCategory string

var (
	CategoryPersonal     = enum.New(WishCategory("personal"))
	CategoryCareer       = enum.New(WishCategory("career"))
	CategoryHealth       = enum.New(WishCategory("health"))
	CategoryRelationship = enum.New(WishCategory("relationship"))
	CategoryTravel       = enum.New(WishCategory("travel"))
	CategoryEducation    = enum.New(WishCategory("education"))
	CategoryFinancial    = enum.New(WishCategory("financial"))
	CategoryOther        = enum.New(WishCategory("other"))
)

type WishVisibility string

var (
	VisibilityPublic  = enum.New(WishVisibility("public"))
	VisibilityPrivate = enum.New(WishVisibility("private"))
	VisibilityFriends = enum.New(WishVisibility("friends"))
)

type Wish struct {
	Base
	AuthorID string `gorm:"index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	Title      string
	Content    string
	Category   WishCategory   `gorm:"index"`
	Visibility WishVisibility `gorm:"index"`
	Tags       Array[string]

	IsCompleted bool
	CompletedAt sql.NullTime

	// Denormalized counters kept in step with wish_interactions. They can
	// drift under concurrent toggles; see InteractionDomain.RecountLikes.
	LikeCount    int
	CommentCount int
}
