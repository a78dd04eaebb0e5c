package kv

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/boltdb/bolt"
)

// Keys and bucket names are arbitrary bytes, so the command line uses
// a quoting syntax: "/" separates nested bucket names, and a ":"
// separated fragment starting with "@" holds hex-encoded bytes.

const fragSeparator = ':'
const pathSeparator = '/'

func splitBuckets(quoted string) ([][]byte, error) {
	var result [][]byte
	for _, q := range strings.Split(quoted, string(pathSeparator)) {
		k, err := decodeKey(q)
		if err != nil {
			return nil, err
		}
		result = append(result, k)
	}
	return result, nil
}

func decodeKey(quoted string) ([]byte, error) {
	var key []byte
	for _, frag := range strings.Split(quoted, string(fragSeparator)) {
		if frag == "" {
			return nil, fmt.Errorf("quoted key cannot have empty fragment: %s", quoted)
		}
		switch {
		case strings.HasPrefix(frag, "@"):
			f, err := hex.DecodeString(frag[1:])
			if err != nil {
				return nil, err
			}
			key = append(key, f...)
		default:
			key = append(key, frag...)
		}
	}
	return key, nil
}

func isSafe(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch r {
	case fragSeparator:
		return false
	case '.', ',', '-':
		return true
	}
	return false
}

// runs of safe bytes shorter than this are not worth a fragment of
// their own
const prettyThreshold = 2

func encodeKey(key []byte) string {
	// process safe bytes only at the beginning and end; this avoids
	// many false positives in large binary data
	var left, middle, right string

	{
		mid := bytes.TrimLeftFunc(key, isSafe)
		if len(key)-len(mid) > prettyThreshold {
			left = string(key[:len(key)-len(mid)]) + string(fragSeparator)
			key = mid
		}
	}

	{
		mid := bytes.TrimRightFunc(key, isSafe)
		if len(key)-len(mid) > prettyThreshold {
			right = string(fragSeparator) + string(key[len(mid):])
			key = mid
		}
	}

	if len(key) > 0 {
		middle = "@" + hex.EncodeToString(key)
	}

	return strings.Trim(left+middle+right, string(fragSeparator))
}

func lookupBucket(tx *bolt.Tx, buckets [][]byte) (*bolt.Bucket, error) {
	if len(buckets) == 0 {
		return nil, errors.New("empty bucket path")
	}
	b := tx.Bucket(buckets[0])
	if b == nil {
		return nil, errors.New("bucket not found")
	}
	for _, name := range buckets[1:] {
		b = b.Bucket(name)
		if b == nil {
			return nil, errors.New("bucket not found")
		}
	}
	return b, nil
}

func createBuckets(tx *bolt.Tx, buckets [][]byte) (*bolt.Bucket, error) {
	if len(buckets) == 0 {
		return nil, errors.New("empty bucket path")
	}
	b, err := tx.CreateBucketIfNotExists(buckets[0])
	if err != nil {
		return nil, err
	}
	for _, name := range buckets[1:] {
		b, err = b.CreateBucketIfNotExists(name)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}
