// Package game identifies which title of the trilogy a file belongs to.
// Text control codes and filelist layouts differ between them.
package game

import (
	"fmt"
	"strings"

	"github.com/ossyrian/fabulanova/internal/errs"
)

// Code selects the per-title behavior.
type Code int

const (
	// FF13_1 is Final Fantasy XIII.
	FF13_1 Code = iota
	// FF13_2 is Final Fantasy XIII-2.
	FF13_2
	// FF13_3 is Lightning Returns: Final Fantasy XIII.
	FF13_3
)

func (c Code) String() string {
	switch c {
	case FF13_1:
		return "ff13-1"
	case FF13_2:
		return "ff13-2"
	case FF13_3:
		return "ff13-lr"
	default:
		return fmt.Sprintf("game(%d)", int(c))
	}
}

// Parse returns the Code for a user-supplied game name.
func Parse(name string) (Code, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ff13-1", "ff13", "1", "xiii":
		return FF13_1, nil
	case "ff13-2", "2", "xiii-2":
		return FF13_2, nil
	case "ff13-3", "ff13-lr", "3", "lr":
		return FF13_3, nil
	default:
		return 0, fmt.Errorf("%w: unknown game: %q", errs.ErrFormat, name)
	}
}

// HasEncryptedFilelists reports whether filelists of this title may be encrypted.
func (c Code) HasEncryptedFilelists() bool {
	return c != FF13_1
}
