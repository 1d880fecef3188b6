package lru

import "fmt"

type constError string

// ErrInvalidSpaceLimit may be returned from [New].
const ErrInvalidSpaceLimit = constError("invalid space limit")

func (errStr constError) Error() string { return string(errStr) }

func minSpaceLimitError(limit int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidSpaceLimit, MinimumSpaceLimit, limit)
}
