package model

import (
	"time"

	"github.com/wishwall/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User, includeSensitive bool) User {
	if user == nil {
		return User{}
	}

	email := ""
	if includeSensitive {
		email = user.Email
	}

	return User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     email,
		CreatedAt: user.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertWish(wish *entity.Wish, author User) Wish {
	if wish == nil {
		return Wish{}
	}

	completedAt := ""
	if wish.CompletedAt.Valid {
		completedAt = wish.CompletedAt.Time.Format(DefaultTimeLayout)
	}

	return Wish{
		ID:           wish.ID,
		Author:       author,
		Title:        wish.Title,
		Content:      wish.Content,
		Category:     string(wish.Category),
		Visibility:   string(wish.Visibility),
		Tags:         wish.Tags,
		IsCompleted:  wish.IsCompleted,
		CompletedAt:  completedAt,
		LikeCount:    wish.LikeCount,
		CommentCount: wish.CommentCount,
		CreatedAt:    wish.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertInteraction(interaction *entity.Interaction, user User) Interaction {
	if interaction == nil {
		return Interaction{}
	}

	return Interaction{
		ID:        interaction.ID,
		WishID:    interaction.WishID,
		User:      user,
		Kind:      string(interaction.Kind),
		Content:   interaction.Content,
		CreatedAt: interaction.CreatedAt.Format(DefaultTimeLayout),
	}
}
