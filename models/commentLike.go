package models

import "errors"

var (
	ErrCommentLikeMissingProperty = errors.New("COMMENT_LIKE.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentLikeInvalidType     = errors.New("COMMENT_LIKE.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// CommentLike is the validated payload for toggling a like on a comment.
// The (Comment, User) pair is the identity of the like; Thread scopes the
// existence check.
type CommentLike struct {
	Comment string `json:"comment"`
	User    string `json:"user"`
	Thread  string `json:"thread"`
}

func NewCommentLike(comment, user, thread string) (CommentLike, error) {
	if comment == "" || user == "" || thread == "" {
		return CommentLike{}, ErrCommentLikeMissingProperty
	}
	return CommentLike{Comment: comment, User: user, Thread: thread}, nil
}
