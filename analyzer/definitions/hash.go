package definitions

import "github.com/minio/highwayhash"

// hashKey is a fixed 32-byte highwayhash key, the same arrangement the
// teacher uses in inspector/graph/hash.go for its content-addressed
// Document scheme.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// NameHash returns a highwayhash of a canonical name. The five Add* methods
// use it to assert, defensively, that the string-keyed index they already
// maintain never silently aliases two distinct canonical names onto the
// same slot — a cheap collision guard layered on top of the map, not a
// replacement for it.
func NameHash(name []byte) uint64 {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		// hashKey is a fixed, valid-length constant; New64 only fails on a
		// key of the wrong size.
		panic(err)
	}
	_, _ = h.Write(name)
	return h.Sum64()
}
