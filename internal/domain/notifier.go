package domain

import "github.com/puzpuzpuz/xsync"

const (
	GraphChangeLogin    = "login"
	GraphChangeLogout   = "logout"
	GraphChangeFollow   = "follow"
	GraphChangeUnfollow = "unfollow"
)

// GraphEvent announces that the session or follow graph of a user
// changed. Subscribers use it to drop any follow graph they derived for
// that user; the graph itself is always recomputed from edges on read.
type GraphEvent struct {
	UserID string
	Change string
}

type GraphNotifier struct {
	subscribers *xsync.MapOf[string, func(GraphEvent)]
}

func NewGraphNotifier() *GraphNotifier {
	return &GraphNotifier{subscribers: xsync.NewMapOf[func(GraphEvent)]()}
}

func (n *GraphNotifier) Subscribe(id string, fn func(GraphEvent)) {
	n.subscribers.Store(id, fn)
}

func (n *GraphNotifier) Unsubscribe(id string) {
	n.subscribers.Delete(id)
}

func (n *GraphNotifier) Notify(event GraphEvent) {
	n.subscribers.Range(func(_ string, fn func(GraphEvent)) bool {
		fn(event)
		return true
	})
}
