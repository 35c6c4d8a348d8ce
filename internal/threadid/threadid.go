// Thread identity hashing for panic report headlines.
package threadid

// FNV-1a, from hash/fnv. Inlined here because the report path shouldn't
// allocate, and the stdlib hasher does.
const fnvOffset64 = 14695981039346656037
const fnvPrime64 = 1099511628211

// Hash returns a hash of the calling thread's identity, computed fresh on
// every call. Informational only, it is never used for synchronization.
func Hash() uint64 {
	identity := identity()

	hash := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		hash ^= identity & 0xff
		hash *= fnvPrime64
		identity >>= 8
	}
	return hash
}
