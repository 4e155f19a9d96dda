package dice

import "errors"

var (
	// ErrInvalidArena reports non-positive dimensions or negative margins
	ErrInvalidArena = errors.New("invalid arena")
	// ErrArenaTooSmall reports an arena that cannot hold even one die
	ErrArenaTooSmall = errors.New("arena too small for a die")
	// ErrRollInProgress is returned by operations only allowed between rolls
	ErrRollInProgress = errors.New("roll in progress")
	// ErrClosed is returned once the roller has been torn down
	ErrClosed = errors.New("roller closed")
	// ErrNoSuchDie reports a die index outside [0, Count)
	ErrNoSuchDie = errors.New("no such die")
)
