package controller

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/project/catalog/internal/entity"
)

type bookResolver struct {
	book entity.Book
}

func (r *bookResolver) ID() graphql.ID {
	return graphql.ID(r.book.ID)
}

func (r *bookResolver) Title() string {
	return r.book.Title
}

func (r *bookResolver) Published() int32 {
	return int32(r.book.Published)
}

func (r *bookResolver) Genres() []string {
	return r.book.Genres
}

func (r *bookResolver) Author() *authorResolver {
	return &authorResolver{author: r.book.Author}
}

type authorResolver struct {
	author entity.Author
}

func (r *authorResolver) ID() graphql.ID {
	return graphql.ID(r.author.ID)
}

func (r *authorResolver) Name() string {
	return r.author.Name
}

func (r *authorResolver) Born() *int32 {
	if r.author.Born == nil {
		return nil
	}
	born := int32(*r.author.Born)
	return &born
}

func (r *authorResolver) BookCount() int32 {
	return int32(r.author.BookCount)
}

type userResolver struct {
	user entity.User
}

func (r *userResolver) ID() graphql.ID {
	return graphql.ID(r.user.ID)
}

func (r *userResolver) Username() string {
	return r.user.Username
}

func (r *userResolver) FavoriteGenre() string {
	return r.user.FavoriteGenre
}

type tokenResolver struct {
	value string
}

func (r *tokenResolver) Value() string {
	return r.value
}
