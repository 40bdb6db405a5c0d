//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/fc9399/ForksAndWords/internal/mm"
	"github.com/fc9399/ForksAndWords/internal/vv"
)

// NewMessageMakerConfigured - a MessageMaker that honors the current Config
func NewMessageMakerConfigured() *mm.MessageMaker {
	m := NewMessageMakerWithDefaults()
	UpdateMessageMakerWithConfig(m)
	return m
}

func NewMessageMakerWithDefaults() *mm.MessageMaker {
	return mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION, vv.DEFAULTGOLOGLEVEL)
}

func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
}
