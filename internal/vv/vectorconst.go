//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	CONFIGLDA        = "faw-lda-conf.json"
	DEFAULTFITTER    = "lda"
	DEFAULTCHRTWIDTH = "1100px"
	DEFAULTCHRTHT    = "640px"
	LDATOPICS        = 8
	LDAMAXTOPICS     = 30
	LDATOPWORDS      = 10
	LDASEED          = 42
	LDAITER          = 200
	LDAXFORMPASSES   = 100
	LDABURNINPASSES  = 2
	LDACHGEVALFRQ    = 10
	LDAPERPEVALFRQ   = 10
	LDAPERPTOL       = 1e-2
	MINTOKENLEN      = 3
)
