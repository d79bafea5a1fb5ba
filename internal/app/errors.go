package app

import "errors"

// ErrNotBootstrapped is returned by [Process.Run] when called before a
// successful [Process.Bootstrap].
var ErrNotBootstrapped = errors.New("process is not bootstrapped")
