//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/lnch"
	"github.com/fc9399/ForksAndWords/internal/mm"
	"github.com/fc9399/ForksAndWords/internal/pipe"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/vec"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/fc9399/ForksAndWords/web"
	"github.com/pkg/profile"
	"os"
	"sync"
	"time"
)

// these next variables should be injected at build time: 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT"', etc

var GitCommit string
var VersSuppl string
var BuildDate string

func main() {
	lnch.GitCommit = GitCommit
	lnch.VersSuppl = VersSuppl
	lnch.BuildDate = BuildDate

	//
	// LAUNCH
	//

	lnch.ConfigAtLaunch()
	cfg := *lnch.Config
	msg := lnch.Msg

	if !cfg.QuietStart {
		lnch.PrintVersion(cfg)
		lnch.PrintBuildInfo(cfg)
		lnch.PrintCopyright()
	}

	// go tool pprof --pdf ./ForksAndWords /var/folders/.../cpu.pprof > profile.pdf
	if cfg.ProfileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	//
	// MENU
	//

	d := &dashboard{cfg: cfg, msg: msg}

	actions := map[string]menuaction{
		"1": func() error { return topicmodeling(cfg, msg) },
		"2": func() error { _, err := pipe.SceneMerge(cfg, msg); return err },
		"3": d.start,
	}

	newmenu(os.Stdin, os.Stdout, msg, actions).loop()

	d.stop()
}

// topicmodeling - menu option 1; the LDA settings file is read (or written) on every run so edits take effect at once
func topicmodeling(cfg str.CurrentConfiguration, msg *mm.MessageMaker) error {
	const (
		MSG1 = "wrote default topic model configuration to '%s'"
	)

	dir := vv.CONFIGLOCATION
	if h, err := os.UserHomeDir(); err == nil {
		dir = fmt.Sprintf(vv.CONFIGALTAPTH, h)
	}

	lda, written, err := vec.LoadLDAConfig(dir)
	if err != nil {
		return err
	}
	if written {
		msg.NOTE(fmt.Sprintf(MSG1, dir+vv.CONFIGLDA))
	}

	_, err = pipe.TopicModeling(cfg, lda, msg)
	return err
}

// dashboard - the echo server runs in its own goroutine while the menu keeps reading
type dashboard struct {
	sync.Mutex
	cfg str.CurrentConfiguration
	msg *mm.MessageMaker
	srv *web.Server
}

// start - menu option 3
func (d *dashboard) start() error {
	const (
		MSG1  = "the dashboard is already running at C3http://%sC0"
		MSG2  = "dashboard running at C3http://%sC0"
		FAIL1 = "the dashboard stopped: %s"
	)

	d.Lock()
	defer d.Unlock()

	if d.srv != nil {
		d.msg.NOTE(d.msg.Color(fmt.Sprintf(MSG1, d.srv.Addr())))
		return nil
	}

	srv := web.NewServer(d.cfg, d.msg)
	d.srv = srv

	go func() {
		if err := srv.Start(); err != nil {
			d.msg.CRIT(fmt.Sprintf(FAIL1, err.Error()))
			d.Lock()
			if d.srv == srv {
				d.srv = nil
			}
			d.Unlock()
		}
	}()

	d.msg.NOTE(d.msg.Color(fmt.Sprintf(MSG2, srv.Addr())))
	return nil
}

// stop - called on the way out
func (d *dashboard) stop() {
	const (
		WAIT  = 5 * time.Second
		FAIL1 = "dashboard shutdown: %s"
	)

	d.Lock()
	defer d.Unlock()

	if d.srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), WAIT)
	defer cancel()
	if err := d.srv.Shutdown(ctx); err != nil {
		d.msg.WARN(fmt.Sprintf(FAIL1, err.Error()))
	}
	d.srv = nil
}
