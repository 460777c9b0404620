package model

type Wish struct {
	ID           string   `json:"id"`
	Author       User     `json:"author"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Category     string   `json:"category"`
	Visibility   string   `json:"visibility"`
	Tags         []string `json:"tags"`
	IsCompleted  bool     `json:"is_completed"`
	CompletedAt  string   `json:"completed_at,omitempty"`
	LikeCount    int      `json:"like_count"`
	CommentCount int      `json:"comment_count"`
	CreatedAt    string   `json:"created_at"`
}

type CreateWishRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Visibility string   `json:"visibility"`
	Tags       []string `json:"tags"`
}

type CreateWishResponse struct {
	Wish Wish `json:"wish"`
}

type DeleteWishRequest struct {
	ID string `json:"id"`
}

type DeleteWishResponse struct {
	Success bool `json:"success"`
}

type CompleteWishRequest struct {
	ID string `json:"id"`
}

type CompleteWishResponse struct {
	Wish Wish `json:"wish"`
}

type GetFeedRequest struct {
	Category string `json:"category"`
}

type GetFeedResponse struct {
	Wishes []Wish `json:"wishes"`
}

type GetUserWishesRequest struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
}

type GetUserWishesResponse struct {
	Wishes          []Wish `json:"wishes"`
	PermissionLevel string `json:"permission_level"`
}
