//go:build js

package window

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"
)

// Scores is the high score store of the window front end.
type Scores interface {
	ReadHighScore() (int, error)
	WriteHighScore(score int) error
	Close() error
}

var errNoLocalStorage = errors.New("window: localStorage unavailable")

// localScores keeps the best score in the browser's localStorage as a
// decimal string. Session history is not kept.
type localScores struct {
	key string
}

// OpenScores returns a localStorage-backed store; dbPath is ignored.
func OpenScores(_ string, key string) (Scores, error) {
	if storageObject().IsUndefined() {
		return nil, errNoLocalStorage
	}
	return localScores{key: key}, nil
}

func storageObject() js.Value {
	ls := js.Global().Get("localStorage")
	if ls.IsNull() {
		return js.Undefined()
	}
	return ls
}

func (s localScores) ReadHighScore() (int, error) {
	ls := storageObject()
	if ls.IsUndefined() {
		return 0, errNoLocalStorage
	}
	v := ls.Call("getItem", s.key)
	if v.IsNull() || v.IsUndefined() {
		return 0, nil
	}
	n, err := strconv.Atoi(v.String())
	if err != nil || n < 0 {
		return 0, fmt.Errorf("window: malformed high score %q", v.String())
	}
	return n, nil
}

func (s localScores) WriteHighScore(score int) error {
	ls := storageObject()
	if ls.IsUndefined() {
		return errNoLocalStorage
	}
	ls.Call("setItem", s.key, strconv.Itoa(score))
	return nil
}

func (localScores) Close() error { return nil }
