package domain

import "errors"

// ErrShiftTaken signals that a claim was decided in favor of another courier
// (or the shift was withdrawn upstream). Both cases are terminal: retrying
// cannot change an already-decided allocation.
var ErrShiftTaken = errors.New("shift no longer available")

// ErrAuthFailed signals rejected credentials on login.
var ErrAuthFailed = errors.New("authentication failed")
