package runlog

import (
	"encoding/json"
	"fmt"
)

// FNV-1a 32-bit constants.
const (
	offsetBasis uint32 = 2166136261
	prime       uint32 = 16777619
)

// Canonical serializes a RunLog to its canonical string form: sequences in
// order, struct fields in declaration order, map keys sorted
// lexicographically. Insertion order of any map inside the runlog never
// affects the output.
func Canonical(r RunLog) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("canonicalize runlog: %w", err)
	}
	return string(data), nil
}

// Fold hashes s with a 32-bit FNV-1a fold: one XOR-then-multiply step per
// character.
func Fold(s string) string {
	h := offsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime
	}
	return fmt.Sprintf("%08x", h)
}

// Hash returns the canonical 8-hex-digit content hash of a RunLog.
func Hash(r RunLog) (string, error) {
	s, err := Canonical(r)
	if err != nil {
		return "", err
	}
	return Fold(s), nil
}
