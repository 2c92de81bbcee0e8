package query

import "github.com/gts-project/gts/internal/gtserr"

const ErrSyntax = "E040"

func newSyntaxError(message string) error {
	return gtserr.New(gtserr.KindQuerySyntax, ErrSyntax, message)
}
