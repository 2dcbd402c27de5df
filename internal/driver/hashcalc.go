package driver

import (
	"crypto/sha256"
	"os"
)

// combineDigest: H(len(p1) || p1 || len(p2) || p2 ...). Length prefixes
// keep ("ab", "c") and ("a", "bc") apart.
func combineDigest(parts ...[]byte) Digest {
	h := sha256.New()
	for _, p := range parts {
		n := len(p)
		_, _ = h.Write([]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey identifies one generation: the normalized source content and
// everything that influences the generated text or its location.
func (s *session) cacheKey(content Digest, dest string) Digest {
	return combineDigest(
		content[:],
		[]byte(s.backend.Name()),
		[]byte(s.opts.version()),
		[]byte(s.opts.GoPackage),
		[]byte(dest),
	)
}

func fileDigest(path string) (Digest, error) {
	// #nosec G304 -- path was produced by this program
	data, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, err
	}
	return sha256.Sum256(data), nil
}
