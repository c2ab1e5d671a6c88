package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/utamaduni/storage"
)

// Key prefixes for the two collections
const (
	tribePrefix = "tribe:"
	assetPrefix = "asset:"

	// Hold the live generation of each collection. Written on every save so an
	// empty collection differs from a missing one.
	tribeMarker = "meta:tribe"
	assetMarker = "meta:asset"
)

// makeGenerationPrefix returns the key prefix shared by every record of one
// saved generation of a collection.
func makeGenerationPrefix(prefix string, gen uint64) []byte {
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], gen)
	return buf
}

// makePositionKey generates the key for the record at position pos of generation gen.
// Format: prefix + 8 byte generation + 8 byte big endian position, so key order
// equals collection order.
func makePositionKey(prefix string, gen uint64, pos int) []byte {
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, makeGenerationPrefix(prefix, gen))
	binary.BigEndian.PutUint64(buf[offset:], uint64(pos))
	return buf
}

func encodeGeneration(gen uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, gen)
}

func decodeGeneration(val []byte) (uint64, error) {
	if len(val) != 8 {
		return 0, fmt.Errorf("%w: generation marker is %d bytes", storage.ErrSerializationFailed, len(val))
	}
	return binary.BigEndian.Uint64(val), nil
}
