//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bufio"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/mm"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"io"
	"strings"
)

const (
	MENUEXIT = "0"
)

type menuaction func() error

// menu - the numbered choices; an action reports its own failure and the loop carries on
type menu struct {
	in      *bufio.Scanner
	out     io.Writer
	msg     *mm.MessageMaker
	actions map[string]menuaction
}

func newmenu(in io.Reader, out io.Writer, msg *mm.MessageMaker, actions map[string]menuaction) *menu {
	return &menu{in: bufio.NewScanner(in), out: out, msg: msg, actions: actions}
}

// loop - show the menu, read a choice, run it; "0" or the end of the input stops the loop
func (m *menu) loop() {
	const (
		MSG1  = "unknown option 'C1%sC0'"
		MSG2  = "option %s finished"
		FAIL1 = "option %s failed: %s"
	)

	for {
		fmt.Fprint(m.out, m.msg.ColStyle(vv.MENUTEXT))
		fmt.Fprint(m.out, vv.MENUPROMPT)

		if !m.in.Scan() {
			fmt.Fprintln(m.out)
			return
		}

		choice := strings.TrimSpace(m.in.Text())
		if choice == MENUEXIT {
			return
		}

		act, ok := m.actions[choice]
		if !ok {
			m.msg.WARN(m.msg.Color(fmt.Sprintf(MSG1, choice)))
			continue
		}

		if err := act(); err != nil {
			m.msg.CRIT(fmt.Sprintf(FAIL1, choice, err.Error()))
			continue
		}
		m.msg.FYI(fmt.Sprintf(MSG2, choice))
	}
}
