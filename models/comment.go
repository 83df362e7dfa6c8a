package models

import "errors"

// DeletedCommentContent is the fixed redaction shown in place of a
// soft-deleted comment. Redaction happens at construction time and is
// one-way: the raw content is never re-exposed.
const DeletedCommentContent = "**this comment has been deleted**"

var (
	ErrAddCommentMissingProperty = errors.New("ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddCommentInvalidType     = errors.New("ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrCommentMissingProperty    = errors.New("COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentInvalidType        = errors.New("COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// AddComment is the validated payload for posting a comment on a thread.
type AddComment struct {
	Content string `json:"content"`
	Thread  string `json:"thread"`
	Owner   string `json:"owner"`
}

func NewAddComment(content, thread, owner string) (AddComment, error) {
	if content == "" || thread == "" || owner == "" {
		return AddComment{}, ErrAddCommentMissingProperty
	}
	return AddComment{Content: content, Thread: thread, Owner: owner}, nil
}

// AddedComment is the projection returned after a comment is persisted.
type AddedComment struct {
	ID      string `json:"id" db:"id"`
	Content string `json:"content" db:"content"`
	Owner   string `json:"owner" db:"owner"`
}

// CommentRow is the raw storage row for a comment, joined with the author's
// username and the derived like count.
type CommentRow struct {
	ID         string `db:"id"`
	Username   string `db:"username"`
	Content    string `db:"content"`
	Created_At string `db:"created_at"`
	Is_Deleted bool   `db:"is_deleted"`
	Like_Count int    `db:"like_count"`
}

// Comment is the read projection of a comment with redaction applied.
type Comment struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Date       string `json:"date"`
	Content    string `json:"content"`
	Like_Count int    `json:"likeCount"`
}

// NewComment builds the read projection from a storage row, masking the
// content when the row is soft-deleted.
func NewComment(row CommentRow) (Comment, error) {
	if row.ID == "" || row.Username == "" || row.Content == "" || row.Created_At == "" {
		return Comment{}, ErrCommentMissingProperty
	}

	content := row.Content
	if row.Is_Deleted {
		content = DeletedCommentContent
	}

	return Comment{
		ID:         row.ID,
		Username:   row.Username,
		Date:       row.Created_At,
		Content:    content,
		Like_Count: row.Like_Count,
	}, nil
}
