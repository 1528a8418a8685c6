package app

import (
	"io"
	"log"

	"github.com/google/uuid"
)

// NewLogger returns a logger whose prefix carries a fresh session id, along
// with the id itself.
func NewLogger(w io.Writer) (*log.Logger, string) {
	id := uuid.NewString()
	return log.New(w, "[life "+id[:8]+"] ", log.LstdFlags), id
}
