package models

// EncryptedDataProbe reports whether any of a user's records already carry
// encrypted values. It is how a device without a key finds out that another
// device has been writing encrypted data.
type EncryptedDataProbe struct {
	Activities bool `json:"activities"`
	Notes      bool `json:"notes"`
}

// Any reports whether at least one resource holds encrypted data.
func (p EncryptedDataProbe) Any() bool {
	return p.Activities || p.Notes
}
