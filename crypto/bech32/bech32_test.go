package bech32

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte("0123456789abcdefghij")

	enc, err := Encode("iov", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	hrp, raw, err := Decode(string(enc))
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if hrp != "iov" {
		t.Fatalf("unexpected human readable part: %q", hrp)
	}
	if !bytes.Equal(raw, payload) {
		t.Fatalf("payload mismatch: %X", raw)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode("this is not bech32"); err == nil {
		t.Fatal("decoding garbage must fail")
	}
}
