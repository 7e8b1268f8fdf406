// Package display implements the text field of a four-function calculator on
// top of package arith.
//
// A Display holds the text a user has typed. Calculate replaces it with the
// value of the expression, or with ErrorText if the text is not a valid
// expression for any reason. The reason is still available from Err for
// logging, but the display itself never distinguishes between failures.
package display

import (
	"errors"
	"regexp"

	"github.com/zephyrtronium/arith"
)

// ErrorText is the text shown in place of a result when calculation fails.
const ErrorText = "Error"

// Allowed matches the texts which Calculate passes on to arith.Eval. Anything
// else fails with ErrFiltered before evaluation. The empty string does not
// match.
var Allowed = regexp.MustCompile(`^[0-9+\-*/().\s]+$`)

// ErrFiltered is the error recorded by Calculate when the text contains
// characters outside Allowed or is empty.
var ErrFiltered = errors.New("display: text contains characters that are not allowed")

// Display is a calculator's text field. The zero value is an empty display
// ready to use. A Display is not safe for concurrent use.
type Display struct {
	text string
	err  error
}

// Text returns the current contents of the display.
func (d *Display) Text() string {
	return d.text
}

// Append adds s to the end of the display, as when pressing a button.
func (d *Display) Append(s string) {
	d.text += s
}

// Clear empties the display and forgets the last error.
func (d *Display) Clear() {
	d.text = ""
	d.err = nil
}

// Calculate evaluates the text of the display and replaces it with the
// result. On any failure, including a result that is not finite, the display
// shows ErrorText instead. Returns the new text.
func (d *Display) Calculate() string {
	d.err = nil
	if !Allowed.MatchString(d.text) {
		d.fail(ErrFiltered)
		return d.text
	}
	r, err := arith.Eval(d.text)
	if err != nil {
		d.fail(err)
		return d.text
	}
	d.text = arith.Format(r)
	return d.text
}

// Err returns the reason the last Calculate failed, or nil if it succeeded or
// if there has been no calculation since the last Clear.
func (d *Display) Err() error {
	return d.err
}

func (d *Display) fail(err error) {
	d.text = ErrorText
	d.err = err
}
