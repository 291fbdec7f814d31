package keystore

import "errors"

// ErrKeyNotFound is returned by Get when the device holds no key.
var ErrKeyNotFound = errors.New("encryption key not found")

var errCorruptedItem = errors.New("stored key item is corrupted")
