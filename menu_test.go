//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"errors"
	"github.com/fc9399/ForksAndWords/internal/mm"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func testmenu(input string, actions map[string]menuaction) *bytes.Buffer {
	var out bytes.Buffer
	msg := mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION, 5)
	msg.BW = true
	msg.Out = &out
	newmenu(strings.NewReader(input), &out, msg, actions).loop()
	return &out
}

func TestMenuLoop(t *testing.T) {
	calls := map[string]int{}
	count := func(k string) menuaction {
		return func() error {
			calls[k]++
			return nil
		}
	}
	actions := map[string]menuaction{"1": count("1"), "2": count("2"), "3": count("3")}

	out := testmenu("9\n1\n 2 \n0\n1\n", actions)

	assert.Equal(t, map[string]int{"1": 1, "2": 1}, calls)
	assert.Contains(t, out.String(), "unknown option '9'")
	assert.Equal(t, 4, strings.Count(out.String(), vv.MENUPROMPT))
}

func TestMenuSurvivesFailures(t *testing.T) {
	n := 0
	actions := map[string]menuaction{
		"1": func() error {
			n++
			return errors.New("corpus is missing required column(s): description")
		},
	}

	// no "0": the end of the input ends the loop
	out := testmenu("1\n1\n", actions)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, strings.Count(out.String(), "option 1 failed"))
}

func TestMenuEmptyInput(t *testing.T) {
	out := testmenu("", map[string]menuaction{})
	assert.Equal(t, 1, strings.Count(out.String(), vv.MENUPROMPT))
}
