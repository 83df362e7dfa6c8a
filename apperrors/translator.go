package apperrors

// translations is the closed allowlist of internal validation codes that are
// rewritten into user-facing invariant messages. Anything else passes through
// Translate unchanged and is treated as unexpected by the HTTP layer.
var translations = map[string]*ClientError{
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":          NewInvariantError("cannot create a new user because a required property is missing"),
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":     NewInvariantError("cannot create a new user because a property has the wrong data type"),
	"REGISTER_USER.USERNAME_LIMIT_CHAR":                  NewInvariantError("cannot create a new user because the username exceeds the character limit"),
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER": NewInvariantError("cannot create a new user because the username contains a restricted character"),
	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":             NewInvariantError("username and password are required"),
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION":        NewInvariantError("username and password must be strings"),
	"ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":             NewInvariantError("cannot create a new thread because a required property is missing"),
	"ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":        NewInvariantError("cannot create a new thread because a property has the wrong data type"),
	"ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":            NewInvariantError("cannot add the comment because a required property is missing"),
	"ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":       NewInvariantError("cannot add the comment because a property has the wrong data type"),
	"ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":              NewInvariantError("cannot add the reply because a required property is missing"),
	"ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":         NewInvariantError("cannot add the reply because a property has the wrong data type"),
	"COMMENT_LIKE.NOT_CONTAIN_NEEDED_PROPERTY":           NewInvariantError("cannot like the comment because a required property is missing"),
	"COMMENT_LIKE.NOT_MEET_DATA_TYPE_SPECIFICATION":      NewInvariantError("cannot like the comment because a property has the wrong data type"),
	"GET_THREAD_USE_CASE.NOT_CONTAIN_NEEDED_PROPERTY":    NewInvariantError("cannot view the thread because the thread id is missing"),
	"GET_THREAD_USE_CASE.NOT_MEET_DATA_TYPE_SPECIFICATION": NewInvariantError("cannot view the thread because the thread id has the wrong data type"),
}

// Translate maps an internal validation failure to its user-facing invariant
// error. Unrecognized errors are returned as-is.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if translated, ok := translations[err.Error()]; ok {
		return translated
	}
	return err
}
