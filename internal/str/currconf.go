//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"github.com/fc9399/ForksAndWords/internal/vv"
	"path/filepath"
)

type CurrentConfiguration struct {
	BlackAndWhite bool
	CorpusFile    string
	DataDir       string
	DocTopicsFile string
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Fitter        string
	Gzip          bool
	HostIP        string
	HostPort      int
	KeywordsFile  string
	LdaSeed       uint64
	LdaTopics     int
	LdaTopWords   int
	LogLevel      int
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	SceneFile     string
	StopwordFile  string
	TextColumn    string
}

func (c CurrentConfiguration) CorpusPath() string    { return filepath.Join(c.DataDir, c.CorpusFile) }
func (c CurrentConfiguration) StopwordPath() string  { return filepath.Join(c.DataDir, c.StopwordFile) }
func (c CurrentConfiguration) DocTopicsPath() string { return filepath.Join(c.DataDir, c.DocTopicsFile) }
func (c CurrentConfiguration) KeywordsPath() string  { return filepath.Join(c.DataDir, c.KeywordsFile) }

// ScenePath - the merged table lives one level down so that reruns of stage 1 never clobber it
func (c CurrentConfiguration) ScenePath() string {
	return filepath.Join(c.DataDir, vv.PROCESSEDDIR, c.SceneFile)
}
