package service

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/go-share-cache/models"
)

// computeChangeTag fingerprints one saved version of a record.
func computeChangeTag(r models.Record, at time.Time) string {
	h, _ := blake2b.New(16, nil)

	for _, field := range []string{string(r.ID), string(r.Type), string(r.ParentID), r.Name, string(r.ShareID), r.Permission.String()} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(at.UnixNano()))
	h.Write(ts[:])

	return hex.EncodeToString(h.Sum(nil))
}
