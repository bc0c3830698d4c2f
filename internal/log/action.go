package log

type Action = string

const (
	AddBook    Action = "AddBook"
	AllBooks          = "AllBooks"
	BookAdded         = "BookAdded"
	EditAuthor        = "EditAuthor"
	AllAuthors        = "AllAuthors"
	CreateUser        = "CreateUser"
	Login             = "Login"
)
