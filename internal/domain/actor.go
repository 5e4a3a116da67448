package domain

import (
	"bytes"
	"strconv"
)

const (
	AnonymousUser = "anonymous"
	AdminUser     = "admin"
)

// ActorID accepts both JSON numbers and strings, since clients send user ids
// either way.
type ActorID string

func (a *ActorID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*a = ActorID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return err
	}
	*a = ActorID(data)
	return nil
}

// Actor identifies who triggered an operation, for activity analytics. Both
// fields are optional.
type Actor struct {
	UserID   ActorID `json:"userId,omitempty" query:"userId"`
	UserName string  `json:"userName,omitempty" query:"userName"`
}

func (a Actor) Present() bool {
	return a.UserID != ""
}

// Name returns the user name or fallback when none was given.
func (a Actor) Name(fallback string) string {
	if a.UserName == "" {
		return fallback
	}
	return a.UserName
}
