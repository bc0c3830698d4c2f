package entity

import (
	"time"

	"github.com/pkg/errors"
)

type Book struct {
	ID        string
	Title     string
	AuthorID  string
	Published int
	Genres    []string
	CreatedAt time.Time

	// Author is the resolved author record, populated on reads and
	// on the book returned by AddBook.
	Author Author
}

// BookInput carries the client-supplied fields of addBook; the author
// is referenced by name and upserted by the use case.
type BookInput struct {
	Title      string
	AuthorName string
	Published  int
	Genres     []string
}

// BookFilter narrows allBooks; nil fields mean "no restriction".
// An AuthorName that resolves to no author matches nothing.
type BookFilter struct {
	AuthorName *string
	Genre      *string
}

var ErrBookNotFound = errors.New("book not found")
