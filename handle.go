package linkedvec

import (
	"fmt"

	"github.com/hupe1980/linkedvec/internal/arena"
)

// IsNil reports whether h is the absent handle. The zero Handle is nil.
func (h Handle) IsNil() bool {
	return h.index == arena.Nil
}

// String renders h for debugging. The format is not stable.
func (h Handle) String() string {
	if h.IsNil() {
		return "Handle(nil)"
	}
	return fmt.Sprintf("Handle(%d%s)", h.index, h.suffix())
}
