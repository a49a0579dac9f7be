package sqltype

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

func hashString(s string) Bigint {
	return Bigint(xxhash.Sum64String(s))
}

func hashInt64(v int64) Bigint {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return Bigint(xxhash.Sum64(buf[:]))
}
