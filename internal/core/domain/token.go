package domain

import "github.com/google/uuid"

// RedrawToken identifies a pending deferred render.
type RedrawToken struct {
	id uuid.UUID
}

// NewRedrawToken returns a fresh token.
func NewRedrawToken() RedrawToken {
	return RedrawToken{id: uuid.New()}
}

// IsZero reports whether the token refers to no render.
func (t RedrawToken) IsZero() bool {
	return t.id == uuid.Nil
}

func (t RedrawToken) String() string {
	return t.id.String()
}
