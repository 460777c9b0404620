package model

type ToggleFollowRequest struct {
	UserID string `json:"user_id"`
}

type ToggleFollowResponse struct {
	Following bool `json:"following"`
}

type GetFollowGraphRequest struct {
	UserID string `json:"user_id"`
}

// GetFollowGraphResponse partitions the graph the way profile views use
// it: mutual friends, one-directional following, one-directional
// followers. FollowingIDs is the raw following set the feed query uses.
type GetFollowGraphResponse struct {
	FollowingIDs []string `json:"following_ids"`

	Friends       []User `json:"friends"`
	FollowingOnly []User `json:"following_only"`
	FollowersOnly []User `json:"followers_only"`
}
