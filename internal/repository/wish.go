package repository

import (
	"context"
	"errors"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeedFilter describes the wall query for a viewer. An empty ViewerID
// means an anonymous viewer. An empty Category means all categories.
type FeedFilter struct {
	ViewerID     string
	FollowingIDs []string
	Category     entity.WishCategory
}

// AuthorFilter describes the single-user query: all wishes of one author
// restricted to the visibilities the viewer's permission level allows.
type AuthorFilter struct {
	AuthorID     string
	Visibilities []entity.WishVisibility
	Category     entity.WishCategory
}

// BuildFeedConditions translates a FeedFilter into the where-clause the
// store executes. Anonymous viewers get public wishes only. A signed-in
// viewer gets the disjunction of their own wishes (any visibility),
// public wishes from anyone, and friends-only wishes from authors they
// follow. The following branch deliberately checks the raw following
// set, not mutual friendship; friends-only content is shown from anyone
// the viewer follows. The disjunction is emitted whole regardless of how
// large the following list is.
func BuildFeedConditions(f FeedFilter) clause.Expression {
	var cond clause.Expression

	if f.ViewerID == "" {
		cond = clause.Eq{Column: "visibility", Value: entity.VisibilityPublic}
	} else {
		branches := []clause.Expression{
			clause.Eq{Column: "author_id", Value: f.ViewerID},
			clause.Eq{Column: "visibility", Value: entity.VisibilityPublic},
		}

		if len(f.FollowingIDs) > 0 {
			authors := make([]any, len(f.FollowingIDs))
			for i, id := range f.FollowingIDs {
				authors[i] = id
			}

			branches = append(branches, clause.And(
				clause.Eq{Column: "visibility", Value: entity.VisibilityFriends},
				clause.IN{Column: "author_id", Values: authors},
			))
		}

		cond = clause.Or(branches...)
	}

	if f.Category != "" {
		cond = clause.And(cond, clause.Eq{Column: "category", Value: f.Category})
	}

	return cond
}

type WishRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Wish, error)
	GetFeed(ctx context.Context, filter FeedFilter) ([]entity.Wish, error)
	GetListByAuthor(ctx context.Context, filter AuthorFilter) ([]entity.Wish, error)
	Create(ctx context.Context, data *entity.Wish) error
	Delete(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id string) error
	IncreaseLikeCount(ctx context.Context, id string) error
	DecreaseLikeCount(ctx context.Context, id string) error
	IncreaseCommentCount(ctx context.Context, id string) error
	SetLikeCount(ctx context.Context, id string, count int) error
}

type wishRepository struct{}

func NewWishRepository() *wishRepository {
	return &wishRepository{}
}

func (r *wishRepository) GetByID(ctx context.Context, id string) (*entity.Wish, error) {
	var result entity.Wish
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *wishRepository) GetFeed(ctx context.Context, filter FeedFilter) ([]entity.Wish, error) {
	var result []entity.Wish
	err := xcontext.DB(ctx).
		Where(BuildFeedConditions(filter)).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *wishRepository) GetListByAuthor(ctx context.Context, filter AuthorFilter) ([]entity.Wish, error) {
	tx := xcontext.DB(ctx).
		Where("author_id=?", filter.AuthorID).
		Where("visibility IN ?", filter.Visibilities)

	if filter.Category != "" {
		tx = tx.Where("category=?", filter.Category)
	}

	var result []entity.Wish
	if err := tx.Order("created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *wishRepository) Create(ctx context.Context, data *entity.Wish) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *wishRepository) Delete(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Wish{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *wishRepository) MarkCompleted(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Wish{}).
		Where("id=? AND is_completed=?", id, false).
		Updates(map[string]any{
			"is_completed": true,
			"completed_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *wishRepository) IncreaseLikeCount(ctx context.Context, id string) error {
	return r.updateCounter(ctx, id, "like_count", gorm.Expr("like_count+1"))
}

// DecreaseLikeCount floors the counter at zero; decrementing an already
// zero counter is treated as a lost race and succeeds as a no-op.
func (r *wishRepository) DecreaseLikeCount(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Wish{}).
		Where("id=? AND like_count > 0", id).
		Update("like_count", gorm.Expr("like_count-1"))

	return tx.Error
}

func (r *wishRepository) IncreaseCommentCount(ctx context.Context, id string) error {
	return r.updateCounter(ctx, id, "comment_count", gorm.Expr("comment_count+1"))
}

func (r *wishRepository) SetLikeCount(ctx context.Context, id string, count int) error {
	return r.updateCounter(ctx, id, "like_count", count)
}

func (r *wishRepository) updateCounter(ctx context.Context, id, column string, value any) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Wish{}).
		Where("id=?", id).
		Update(column, value)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
