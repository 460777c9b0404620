package entity

import "time"

// Follow is a directed edge from the follower to the followed user. The
// composite primary key keeps the edge unique per ordered pair. Friendship
// has no record of its own; it is the intersection of the two directions,
// recomputed on every read.
type Follow struct {
	CreatedAt time.Time

	FollowerID string `gorm:"primaryKey"`
	Follower   User   `gorm:"foreignKey:FollowerID"`

	FollowingID string `gorm:"primaryKey"`
	Following   User   `gorm:"foreignKey:FollowingID"`
}
