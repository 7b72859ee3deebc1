package space3

import "errors"

// ErrSingular is returned by Inv, InvC and the negative-exponent branch of
// Pow when the determinant is exactly zero. The receiver is left untouched.
var ErrSingular = errors.New("space3: singular matrix")
