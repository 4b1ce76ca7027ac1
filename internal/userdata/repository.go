// Package userdata persists a user's vocabulary record through a generic
// per-user REST resource.
package userdata

import (
	"context"
	"errors"

	"github.com/yqhu-dev/wordtrainer/internal/wordbook"
)

// ErrUserNotFound indicates the username has no record on the remote
// resource. Fatal to the session: there is nothing to train against.
var ErrUserNotFound = errors.New("user record not found")

// Record is the remote per-user document: the full word list and wrong list.
// The field names (including the capitalised Wrong_list) match the records
// written by earlier clients, so documents round-trip unchanged.
type Record struct {
	ID       string                `json:"id"`
	Username string                `json:"username"`
	Words    []wordbook.Word       `json:"word_list"`
	Wrong    []wordbook.WrongEntry `json:"Wrong_list"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/userdata/mock_repository.go -package=mock_userdata Repository

// Repository defines the two persistence operations the trainer needs.
// Save rewrites the whole document; there are no partial updates.
type Repository interface {
	FetchByUsername(ctx context.Context, username string) (*Record, error)
	Save(ctx context.Context, id string, words []wordbook.Word, wrong []wordbook.WrongEntry) error
}
