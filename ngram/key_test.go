package ngram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashToken[int64](42), HashToken[int64](42))
	assert.Equal(t, HashToken("token"), HashToken("token"))
	assert.NotEqual(t, HashToken[int64](42), HashToken[int64](43))
}

func TestHashToken_StringByContent(t *testing.T) {
	// Two strings with distinct backing storage but equal content must hash
	// identically.
	a := "pre" + "fix"
	b := strings.Repeat("prefix", 1)
	assert.Equal(t, HashToken(a), HashToken(b))
}

func TestCombine_OrderSensitive(t *testing.T) {
	ha := HashToken("a")
	hb := HashToken("b")

	ab := Combine(Combine(0, ha), hb)
	ba := Combine(Combine(0, hb), ha)
	assert.NotEqual(t, ab, ba)
}

func TestCombine_GrowsRunningHash(t *testing.T) {
	// Appending a token must change the accumulator.
	h1 := Combine(0, HashToken[int64](7))
	h2 := Combine(h1, HashToken[int64](7))
	assert.NotEqual(t, h1, h2)
}

func TestWindow_View(t *testing.T) {
	data := []int64{10, 20, 30, 40, 50}

	w := NewWindow(data, 1, 2, 2)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, int64(20), w.At(0))
	assert.Equal(t, int64(40), w.At(1))
}

func TestWindow_HashMatchesIncremental(t *testing.T) {
	data := []string{"a", "b", "c", "d"}

	w := NewWindow(data, 0, 1, 3)

	var h uint64
	for i := 0; i < 3; i++ {
		h = Combine(h, HashToken(data[i]))
	}
	assert.Equal(t, h, w.Hash())
}

func TestWindow_StrideChangesHash(t *testing.T) {
	data := []string{"a", "b", "a", "c"}

	contiguous := NewWindow(data, 0, 1, 2) // a,b
	strided := NewWindow(data, 0, 2, 2)    // a,a
	assert.NotEqual(t, contiguous.Hash(), strided.Hash())
}
