package models

import "errors"

// DeletedReplyContent is the fixed redaction shown in place of a soft-deleted
// reply.
const DeletedReplyContent = "**this reply has been deleted**"

var (
	ErrAddReplyMissingProperty = errors.New("ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddReplyInvalidType     = errors.New("ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrReplyMissingProperty    = errors.New("REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrReplyInvalidType        = errors.New("REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// AddReply is the validated payload for posting a reply on a comment.
type AddReply struct {
	Content string `json:"content"`
	Thread  string `json:"thread"`
	Comment string `json:"comment"`
	Owner   string `json:"owner"`
}

func NewAddReply(content, thread, comment, owner string) (AddReply, error) {
	if content == "" || thread == "" || comment == "" || owner == "" {
		return AddReply{}, ErrAddReplyMissingProperty
	}
	return AddReply{Content: content, Thread: thread, Comment: comment, Owner: owner}, nil
}

// AddedReply is the projection returned after a reply is persisted.
type AddedReply struct {
	ID      string `json:"id" db:"id"`
	Content string `json:"content" db:"content"`
	Owner   string `json:"owner" db:"owner"`
}

// ReplyRow is the raw storage row for a reply, joined with the author's
// username.
type ReplyRow struct {
	ID         string `db:"id"`
	Content    string `db:"content"`
	Username   string `db:"username"`
	Comment    string `db:"comment"`
	Created_At string `db:"created_at"`
	Is_Deleted bool   `db:"is_deleted"`
}

// Reply is the read projection of a reply with redaction applied. Comment
// carries the owning-comment reference used by the aggregation step; it is
// not rendered in responses.
type Reply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Username string `json:"username"`
	Comment  string `json:"-"`
	Date     string `json:"date"`
}

func NewReply(row ReplyRow) (Reply, error) {
	if row.ID == "" || row.Content == "" || row.Username == "" || row.Comment == "" || row.Created_At == "" {
		return Reply{}, ErrReplyMissingProperty
	}

	content := row.Content
	if row.Is_Deleted {
		content = DeletedReplyContent
	}

	return Reply{
		ID:       row.ID,
		Content:  content,
		Username: row.Username,
		Comment:  row.Comment,
		Date:     row.Created_At,
	}, nil
}
