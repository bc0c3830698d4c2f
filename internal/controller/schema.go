package controller

// Schema is the full API surface. It is a static string compiled once at
// startup with graphql.MustParseSchema, so a schema/resolver mismatch is a
// boot failure instead of a runtime one.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
		subscription: Subscription
	}

	enum Genre {
		agile
		classic
		crime
		design
		refactoring
		revolution
		patterns
	}

	type Author {
		id: ID!
		name: String!
		born: Int
		bookCount: Int!
	}

	type Book {
		id: ID!
		title: String!
		published: Int!
		genres: [Genre!]!
		author: Author!
	}

	type User {
		id: ID!
		username: String!
		favoriteGenre: Genre!
	}

	type Token {
		value: String!
	}

	type Query {
		bookCount: Int!
		authorCount: Int!
		allBooks(author: String, genre: Genre): [Book!]!
		allAuthors: [Author!]!
		me: User
	}

	type Mutation {
		addBook(title: String!, author: String!, published: Int!, genres: [Genre!]!): Book
		editAuthor(name: String!, setBornTo: Int!): Author
		createUser(username: String!, favoriteGenre: Genre!, password: String!): User
		login(username: String!, password: String!): Token
	}

	type Subscription {
		bookAdded: Book!
	}
`
