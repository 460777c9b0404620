package entity

import "github.com/wishwall/backend/pkg/enum"

type InteractionKind string

var (
	InteractionLike    = enum.New(InteractionKind("like"))
	InteractionComment = enum.New(InteractionKind("comment"))
)

// Interaction records a like or a comment on a wish. A user may hold at
// most one like per wish at a time; comments are unbounded.
type Interaction struct {
	Base
	WishID string `gorm:"index:idx_interactions_wish_user"`
	Wish   Wish   `gorm:"foreignKey:WishID"`

	UserID string `gorm:"index:idx_interactions_wish_user"`
	User   User   `gorm:"foreignKey:UserID"`

	Kind    InteractionKind
	Content string
}

func (Interaction) TableName() string {
	return "wish_interactions"
}
