package domain

import (
	"context"
	"errors"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/repository"
	"gorm.io/gorm"
)

type PermissionLevel string

const (
	PermissionAll    PermissionLevel = "all"
	PermissionFriend PermissionLevel = "friends"
	PermissionPublic PermissionLevel = "public"
)

// PermissionLevelFor decides what a viewer may see of a target user's
// wishes. Owners see everything, mutual friends see public and
// friends-only, everyone else (including anonymous viewers) sees public
// only. One-directional follows grant nothing here.
func PermissionLevelFor(viewerID, targetID string, isFriend bool) PermissionLevel {
	switch {
	case viewerID == "":
		return PermissionPublic
	case viewerID == targetID:
		return PermissionAll
	case isFriend:
		return PermissionFriend
	default:
		return PermissionPublic
	}
}

func AllowedVisibilities(level PermissionLevel) []entity.WishVisibility {
	switch level {
	case PermissionAll:
		return []entity.WishVisibility{
			entity.VisibilityPublic,
			entity.VisibilityPrivate,
			entity.VisibilityFriends,
		}
	case PermissionFriend:
		return []entity.WishVisibility{
			entity.VisibilityPublic,
			entity.VisibilityFriends,
		}
	default:
		return []entity.WishVisibility{entity.VisibilityPublic}
	}
}

// isMutualFollow probes both edge directions. Absence of either edge is
// an ordinary outcome, not an error.
func isMutualFollow(ctx context.Context, followRepo repository.FollowRepository, viewerID, targetID string) (bool, error) {
	if _, err := followRepo.Get(ctx, viewerID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	if _, err := followRepo.Get(ctx, targetID, viewerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
