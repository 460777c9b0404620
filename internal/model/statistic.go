package model

type GetUserStatsRequest struct {
	UserID string `json:"user_id"`
}

type GetUserStatsResponse struct {
	Total         int `json:"total"`
	Public        int `json:"public"`
	Private       int `json:"private"`
	Friends       int `json:"friends"`
	TotalLikes    int `json:"total_likes"`
	TotalComments int `json:"total_comments"`

	PermissionLevel string `json:"permission_level"`
}
