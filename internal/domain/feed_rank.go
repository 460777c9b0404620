package domain

import (
	"sort"

	"github.com/wishwall/backend/internal/entity"
)

// rankFeed orders a feed for the viewer: the viewer's own wishes first,
// then public wishes from followed authors, then everything else, each
// bucket most recent first. The sort is stable, so entries with equal
// bucket and timestamp keep their input order. Without a viewer or with
// nobody followed the order degenerates to pure recency.
func rankFeed(wishes []entity.Wish, viewerID string, following map[string]bool) []entity.Wish {
	ranked := make([]entity.Wish, len(wishes))
	copy(ranked, wishes)

	if viewerID == "" || len(following) == 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
		})
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		bi := feedBucket(ranked[i], viewerID, following)
		bj := feedBucket(ranked[j], viewerID, following)
		if bi != bj {
			return bi < bj
		}

		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}

func feedBucket(wish entity.Wish, viewerID string, following map[string]bool) int {
	if wish.AuthorID == viewerID {
		return 0
	}

	if following[wish.AuthorID] && wish.Visibility == entity.VisibilityPublic {
		return 1
	}

	return 2
}
