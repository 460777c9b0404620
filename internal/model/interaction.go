package model

type Interaction struct {
	ID        string `json:"id"`
	WishID    string `json:"wish_id"`
	User      User   `json:"user"`
	Kind      string `json:"kind"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ToggleLikeRequest struct {
	WishID string `json:"wish_id"`
}

type ToggleLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

type AddCommentRequest struct {
	WishID  string `json:"wish_id"`
	Content string `json:"content"`
}

type AddCommentResponse struct {
	Comment Interaction `json:"comment"`
}

type GetInteractionsRequest struct {
	WishID string `json:"wish_id"`
}

type GetInteractionsResponse struct {
	Interactions []Interaction `json:"interactions"`
}

type RecountLikesRequest struct {
	WishID string `json:"wish_id"`
}

type RecountLikesResponse struct {
	LikeCount int `json:"like_count"`
}
