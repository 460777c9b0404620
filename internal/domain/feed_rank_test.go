package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wishwall/backend/internal/entity"
)

func Test_rankFeed(t *testing.T) {
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	at := func(hours int) entity.Base {
		return entity.Base{CreatedAt: base.Add(time.Duration(hours) * time.Hour)}
	}

	own := entity.Wish{Base: at(1), AuthorID: "viewer", Visibility: entity.VisibilityPrivate}
	ownNewer := entity.Wish{Base: at(2), AuthorID: "viewer", Visibility: entity.VisibilityPublic}
	followedPublic := entity.Wish{Base: at(3), AuthorID: "followed", Visibility: entity.VisibilityPublic}
	followedFriends := entity.Wish{Base: at(6), AuthorID: "followed", Visibility: entity.VisibilityFriends}
	strangerPublic := entity.Wish{Base: at(5), AuthorID: "stranger", Visibility: entity.VisibilityPublic}

	wishes := []entity.Wish{strangerPublic, own, followedFriends, followedPublic, ownNewer}
	following := map[string]bool{"followed": true}

	ranked := rankFeed(wishes, "viewer", following)
	require.Equal(t, []entity.Wish{
		ownNewer, own, // own wishes first, most recent first
		followedPublic,                   // then public wishes from followed authors
		followedFriends, strangerPublic, // then the rest by recency
	}, ranked)

	// Ranking an already ranked feed changes nothing.
	require.Equal(t, ranked, rankFeed(ranked, "viewer", following))

	// The input slice is left untouched.
	require.Equal(t, entity.Wish{Base: at(5), AuthorID: "stranger", Visibility: entity.VisibilityPublic}, wishes[0])
}

func Test_rankFeed_pureRecency(t *testing.T) {
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	older := entity.Wish{Base: entity.Base{ID: "older", CreatedAt: base}, AuthorID: "viewer"}
	newer := entity.Wish{Base: entity.Base{ID: "newer", CreatedAt: base.Add(time.Hour)}, AuthorID: "other"}
	wishes := []entity.Wish{older, newer}

	// No viewer: recency only, ownership is ignored.
	require.Equal(t, []entity.Wish{newer, older}, rankFeed(wishes, "", map[string]bool{"other": true}))

	// A viewer following nobody also falls back to recency.
	require.Equal(t, []entity.Wish{newer, older}, rankFeed(wishes, "viewer", nil))
}

func Test_rankFeed_stable(t *testing.T) {
	createdAt := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	first := entity.Wish{Base: entity.Base{ID: "first", CreatedAt: createdAt}, AuthorID: "a"}
	second := entity.Wish{Base: entity.Base{ID: "second", CreatedAt: createdAt}, AuthorID: "b"}

	ranked := rankFeed([]entity.Wish{first, second}, "viewer", map[string]bool{"x": true})
	require.Equal(t, []entity.Wish{first, second}, ranked)
}
