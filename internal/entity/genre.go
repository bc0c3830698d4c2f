package entity

// Genres enumerates the genre tags a book may carry. The GraphQL schema
// declares the same set as an enum; the use case re-checks it so that
// callers of the domain service get the same contract.
var Genres = []string{
	"agile",
	"classic",
	"crime",
	"design",
	"refactoring",
	"revolution",
	"patterns",
}
