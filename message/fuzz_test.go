package message

import (
	"errors"
	"testing"
)

// FuzzParseName throws arbitrary bytes at the name decoder. Whatever the
// input, the decoder must return one of the three contract outcomes and
// never panic or loop: hostile pointer graphs are the classic way to hang a
// naive DNS parser.
//
// Run with: go test -fuzz=FuzzParseName ./message/
func FuzzParseName(f *testing.F) {
	f.Add([]byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0})
	f.Add([]byte{3, 'w', 'w', 'w', 0xC0, 0x00})
	f.Add([]byte{0xC0, 0x00})
	f.Add([]byte{0x40, 0x41})
	f.Add([]byte{0})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, msg []byte) {
		name, newOffset, err := ParseName(msg, 0)
		if err != nil {
			var wireErr *WireError
			if !errors.Is(err, ErrShortInput) && !errors.As(err, &wireErr) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}

		if newOffset <= 0 || newOffset > len(msg) {
			t.Fatalf("offset %d out of range for %d input octets", newOffset, len(msg))
		}

		// A successfully decoded name must re-encode unless it used
		// forms the encoder refuses (empty labels from odd inputs or
		// labels over 63 octets cannot come off the wire).
		if wire, err := name.Append(nil); err == nil {
			decoded, _, err := ParseName(wire, 0)
			if err != nil {
				t.Fatalf("re-decode of %q failed: %v", name, err)
			}
			if !decoded.Equal(name) {
				t.Fatalf("round trip changed %q into %q", name, decoded)
			}
		}
	})
}

// FuzzParseRecord exercises the full record decoder, including RDATA
// dispatch, against arbitrary input.
func FuzzParseRecord(f *testing.F) {
	f.Add([]byte{
		4, 't', 'e', 's', 't', 5, 'l', 'o', 'c', 'a', 'l', 0,
		0x00, 0x01, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x78,
		0x00, 0x04,
		192, 168, 1, 100,
	})
	f.Add([]byte{0xC0, 0x00, 0x00, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x3C, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, msg []byte) {
		record, newOffset, err := ParseRecord(msg, 0)
		if err != nil {
			var wireErr *WireError
			if !errors.Is(err, ErrShortInput) && !errors.As(err, &wireErr) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}

		if newOffset <= 0 || newOffset > len(msg) {
			t.Fatalf("offset %d out of range for %d input octets", newOffset, len(msg))
		}
		if record.Data == nil {
			t.Fatalf("successful decode must carry RDATA")
		}

		// The structural skip and the eager decoder must agree on the
		// record's extent.
		skipped, err := SkipRecord(msg, 0)
		if err != nil {
			t.Fatalf("eager decode succeeded but skip failed: %v", err)
		}
		if skipped != newOffset {
			t.Fatalf("skip ended at %d, decode at %d", skipped, newOffset)
		}
	})
}
