//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"runtime"
)

//
// VERSION INFO BUILD TIME INJECTION
//

// these next variables should be injected at build time: 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT"', etc
// values are loaded into this file at runtime by main.go

var GitCommit string
var VersSuppl string
var BuildDate string

func PrintVersion(cc str.CurrentConfiguration) {
	// example:
	// [FAW] ForksAndWords (v1.1.0) [git: 64974732] [k=8; seed=42] [gl=2; el=0]
	const (
		SN = "[C1%sC0] "
		GC = " [C4git: C4%sC0]"
		KS = " [C3k=%d; seed=%dC0]"
		LL = " [C6gl=%d; el=%dC0]"
		ME = "C5%sC0 (C2v%sC0)"
	)
	sn := fmt.Sprintf(SN, vv.SHORTNAME)
	gc := ""
	if GitCommit != "" {
		gc = fmt.Sprintf(GC, GitCommit)
	}

	ks := fmt.Sprintf(KS, cc.LdaTopics, cc.LdaSeed)
	ll := fmt.Sprintf(LL, cc.LogLevel, cc.EchoLog)
	versioninfo := fmt.Sprintf(ME, vv.MYNAME, vv.VERSION+VersSuppl)
	versioninfo = sn + versioninfo + gc + ks + ll
	fmt.Println(Msg.ColStyle(versioninfo))
}

func PrintBuildInfo(cc str.CurrentConfiguration) {
	// example:
	// 	Built:	2025-04-14@19:02:51		Golang:	go1.23.4
	//	System:	darwin-arm64			Data:	data
	const (
		BD = "\tS1Built:S0\tC3%sC0\t"
		GV = "\tS1Golang:S0\tC3%sC0\n"
		SY = "\tS1System:S0\tC3%s-%sC0\t"
		DD = "\t\tS1Data:S0\tC3%sC0"
	)

	bi := ""
	if BuildDate != "" {
		bi = Msg.ColStyle(fmt.Sprintf(BD, BuildDate))
	}
	bi += Msg.ColStyle(fmt.Sprintf(GV, runtime.Version()))
	bi += Msg.ColStyle(fmt.Sprintf(SY, runtime.GOOS, runtime.GOARCH))
	bi += Msg.ColStyle(fmt.Sprintf(DD, cc.DataDir))
	fmt.Println(bi)
}

// PrintCopyright - the GPL notice at startup
func PrintCopyright() {
	fmt.Println(Msg.ColStyle(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJMAIL)))
}
