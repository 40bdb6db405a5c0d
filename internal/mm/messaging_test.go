//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func quiet(level int) (*MessageMaker, *bytes.Buffer) {
	var b bytes.Buffer
	m := NewMessageMaker("ForksAndWords", "FAW", "0.0.0", level)
	m.BW = true
	m.Out = &b
	return m, &b
}

func TestEmitRespectsLevel(t *testing.T) {
	m, b := quiet(MSGNOTE)
	m.NOTE("shown")
	m.FYI("hidden")
	m.MAND("always")
	assert.Equal(t, "[FAW] shown\n[FAW] always\n", b.String())
}

func TestColorStripsTagsInBlackAndWhite(t *testing.T) {
	m, _ := quiet(MSGTMI)
	assert.Equal(t, "topic 3 of 8", m.ColStyle("S1topic C33C0 of C18C0S0"))
}

func TestColorSwapsTags(t *testing.T) {
	m, _ := quiet(MSGTMI)
	m.BW = false
	m.Win = false
	assert.Equal(t, YELLOW1+"x"+RESET, m.Color("C1xC0"))
}

func TestCount(t *testing.T) {
	m, _ := quiet(MSGTMI)
	assert.Equal(t, "12,345", m.Count(12345))
	assert.Equal(t, "7", m.Count(7))
}
