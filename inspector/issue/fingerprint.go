package issue

import (
	"strconv"

	"github.com/minio/highwayhash"
)

// fingerprintKey must stay 32 bytes and stable, fingerprints are persisted by reports
var fingerprintKey = []byte("viant/auditor:issue-fingerprint!")

// Fingerprint returns a stable key derived from descriptor, location and description
func (i *Issue) Fingerprint() uint64 {
	var data []byte
	if i.Descriptor != nil {
		data = strconv.AppendInt(data, int64(i.Descriptor.ID), 10)
	}
	for _, part := range []string{i.RelativePath(), strconv.Itoa(i.Line()), i.Description, i.CallingMethod()} {
		data = append(data, 0)
		data = append(data, part...)
	}
	return highwayhash.Sum64(data, fingerprintKey)
}
