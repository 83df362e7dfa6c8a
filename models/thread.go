package models

import "errors"

var (
	ErrAddThreadMissingProperty = errors.New("ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddThreadInvalidType     = errors.New("ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrThreadMissingProperty    = errors.New("THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
)

// AddThread is the validated payload for creating a thread.
type AddThread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Owner string `json:"owner"`
}

func NewAddThread(title, body, owner string) (AddThread, error) {
	if title == "" || body == "" || owner == "" {
		return AddThread{}, ErrAddThreadMissingProperty
	}
	return AddThread{Title: title, Body: body, Owner: owner}, nil
}

// AddedThread is the projection returned after a thread is persisted.
type AddedThread struct {
	ID    string `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Owner string `json:"owner" db:"owner"`
}

// ThreadRow is the raw storage row for a thread joined with the author's
// username.
type ThreadRow struct {
	ID         string `db:"id"`
	Title      string `db:"title"`
	Body       string `db:"body"`
	Created_At string `db:"created_at"`
	Username   string `db:"username"`
}

// Thread is the read projection of a thread header.
type Thread struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewThread(row ThreadRow) (Thread, error) {
	if row.ID == "" || row.Title == "" || row.Body == "" || row.Created_At == "" || row.Username == "" {
		return Thread{}, ErrThreadMissingProperty
	}
	return Thread{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Created_At,
		Username: row.Username,
	}, nil
}
