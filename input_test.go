package pane

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllKeys(t *testing.T, input string) []Key {
	t.Helper()
	kr := NewKeyReader(strings.NewReader(input))
	var keys []Key
	for {
		k, err := kr.ReadKey()
		if err == io.EOF {
			return keys
		}
		require.NoError(t, err)
		keys = append(keys, k)
	}
}

func TestReadPlainRunes(t *testing.T) {
	keys := readAllKeys(t, "ab!")
	require.Len(t, keys, 3)
	assert.Equal(t, Runes('a'), keys[0])
	assert.Equal(t, Runes('b'), keys[1])
	assert.Equal(t, Runes('!'), keys[2])
}

func TestReadUTF8Runes(t *testing.T) {
	keys := readAllKeys(t, "é日")
	require.Len(t, keys, 2)
	assert.Equal(t, Runes('é'), keys[0])
	assert.Equal(t, Runes('日'), keys[1])
}

func TestReadControlKeys(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"\t", Key{Kind: KeyTab}},
		{"\r", Key{Kind: KeyEnter}},
		{"\n", Key{Kind: KeyEnter}},
		{"\x7f", Key{Kind: KeyBackspace}},
		{"\x08", Key{Kind: KeyBackspace}},
		{"\x03", Ctrl('c')},
		{"\x11", Ctrl('q')},
	}
	for _, tt := range tests {
		keys := readAllKeys(t, tt.in)
		require.Len(t, keys, 1, "input %q", tt.in)
		assert.Equal(t, tt.want, keys[0], "input %q", tt.in)
	}
}

func TestReadEscapeSequences(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"\x1b[A", Key{Kind: KeyUp}},
		{"\x1b[B", Key{Kind: KeyDown}},
		{"\x1b[C", Key{Kind: KeyRight}},
		{"\x1b[D", Key{Kind: KeyLeft}},
		{"\x1b[Z", Key{Kind: KeyShiftTab}},
		{"\x1b[H", Key{Kind: KeyHome}},
		{"\x1b[F", Key{Kind: KeyEnd}},
		{"\x1b[1~", Key{Kind: KeyHome}},
		{"\x1b[3~", Key{Kind: KeyDelete}},
		{"\x1b[4~", Key{Kind: KeyEnd}},
		{"\x1bOA", Key{Kind: KeyUp}},
	}
	for _, tt := range tests {
		keys := readAllKeys(t, tt.in)
		require.Len(t, keys, 1, "input %q", tt.in)
		assert.Equal(t, tt.want, keys[0], "input %q", tt.in)
	}
}

func TestReadBareEsc(t *testing.T) {
	keys := readAllKeys(t, "\x1b")
	require.Len(t, keys, 1)
	assert.Equal(t, Key{Kind: KeyEsc}, keys[0])
}

func TestUnknownCSISwallowed(t *testing.T) {
	keys := readAllKeys(t, "\x1b[99qx")
	require.Len(t, keys, 2)
	assert.Equal(t, Key{Kind: KeyEsc}, keys[0], "unknown final byte reports Esc")
	assert.Equal(t, Runes('x'), keys[1], "stream stays in sync afterwards")
}

func TestAltPrefixedKeyReportsPlainKey(t *testing.T) {
	keys := readAllKeys(t, "\x1bf")
	require.Len(t, keys, 1)
	assert.Equal(t, Runes('f'), keys[0])
}

func TestInterleavedSequences(t *testing.T) {
	keys := readAllKeys(t, "a\x1b[A\tb")
	require.Len(t, keys, 4)
	assert.Equal(t, Runes('a'), keys[0])
	assert.Equal(t, Key{Kind: KeyUp}, keys[1])
	assert.Equal(t, Key{Kind: KeyTab}, keys[2])
	assert.Equal(t, Runes('b'), keys[3])
}
