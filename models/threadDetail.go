package models

import "errors"

var (
	ErrCommentsDetailInvalidShape = errors.New("COMMENTS_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrThreadDetailInvalidShape   = errors.New("THREAD_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// ReplyDetail is the rendering of a reply inside a comment's replies list.
// The owning-comment reference is dropped once grouping has happened.
type ReplyDetail struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// CommentDetail is a comment projection augmented with its replies.
type CommentDetail struct {
	Comment
	Replies []ReplyDetail `json:"replies"`
}

// ThreadDetail is the full nested read model of a thread.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// NewCommentsDetail groups replies under their owning comments. The grouping
// is a stable partition keyed by the reply's comment reference: the output
// has the same length and order as the comment list, and each replies
// sublist preserves the replies' relative input order. Replies is never nil,
// an unmatched comment gets an empty list. Both inputs must be materialized
// slices; a nil slice is rejected so callers cannot smuggle in a missing
// result set.
func NewCommentsDetail(comments []Comment, replies []Reply) ([]CommentDetail, error) {
	if comments == nil || replies == nil {
		return nil, ErrCommentsDetailInvalidShape
	}

	details := make([]CommentDetail, 0, len(comments))
	for _, comment := range comments {
		grouped := make([]ReplyDetail, 0)
		for _, reply := range replies {
			if reply.Comment != comment.ID {
				continue
			}
			grouped = append(grouped, ReplyDetail{
				ID:       reply.ID,
				Content:  reply.Content,
				Date:     reply.Date,
				Username: reply.Username,
			})
		}
		details = append(details, CommentDetail{Comment: comment, Replies: grouped})
	}

	return details, nil
}

// NewThreadDetail composes a thread header with its aggregated comments.
func NewThreadDetail(thread Thread, comments []CommentDetail) (ThreadDetail, error) {
	if comments == nil {
		return ThreadDetail{}, ErrThreadDetailInvalidShape
	}

	return ThreadDetail{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: comments,
	}, nil
}
