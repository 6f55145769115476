package dockerfile

import "errors"

var (
	// ErrUnknownKeyword is returned by ParseKind for keywords outside the catalog.
	ErrUnknownKeyword = errors.New("unknown instruction keyword")

	// ErrBuilderFinished is the panic value when a Builder is used after Finish.
	ErrBuilderFinished = errors.New("dockerfile: builder used after Finish")
)
