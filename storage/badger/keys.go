package badger

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/namankura/namankura/core"
)

// Key prefixes for different data types
const (
	nameRecordPrefix = "namrec"
	nameOrderPrefix  = "namord"
	nameSeqPrefix    = "namseq"
	nameLookupPrefix = "namlook"
	nameOrderSeq     = "namordseq"
)

// makeNameRecordKey generates a key for a name record by ID.
func makeNameRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", nameRecordPrefix, id))
}

// makeNameOrderKey generates a composite key for the corpus-order index.
// Format: prefix:seq:id with the sequence in BigEndian order so
// lexicographic iteration follows insertion order.
func makeNameOrderKey(seq uint64, id core.ID) []byte {
	prefix := nameOrderPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeNameSeqKey generates the reverse-mapping key from record ID to its
// corpus-order sequence, used to clean up the order index on delete.
func makeNameSeqKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", nameSeqPrefix, id))
}

// makeNameLookupKey generates the lookup-index key for a display name and
// language, both lowercased.
func makeNameLookupKey(name, language string) []byte {
	return []byte(nameLookupPrefix + ":" + strings.ToLower(name) + "|" + strings.ToLower(language))
}

// encodeSeq serializes a sequence number for the reverse mapping.
func encodeSeq(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

// decodeSeq deserializes a sequence number from the reverse mapping.
func decodeSeq(data []byte) uint64 {
	return binary.BigEndian.Uint64(data)
}
