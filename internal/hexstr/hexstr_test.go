package hexstr

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "empty", in: []byte{}, want: ""},
		{name: "nil", in: nil, want: ""},
		{name: "four bytes", in: []byte{0x01, 0xFF, 0x00, 0x10}, want: "01ff0010"},
		{name: "ascii", in: []byte("land"), want: "6c616e64"},
		{name: "high nibble first", in: []byte{0xAB}, want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncode_LengthAndRoundTrip(t *testing.T) {
	for _, n := range []int{1, 7, 256, 4096} {
		buf := make([]byte, n)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		s := Encode(buf)
		assert.Len(t, s, 2*n)
		assert.Equal(t, bytes.ToLower([]byte(s)), []byte(s))

		back, err := Decode(s)
		require.NoError(t, err)
		assert.Equal(t, buf, back)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("abc")
	assert.Error(t, err)

	_, err = Decode("zz")
	assert.Error(t, err)
}
