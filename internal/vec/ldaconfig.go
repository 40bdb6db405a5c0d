//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"io/fs"
	"os"
	"path/filepath"
)

//
// LDA CONFIGURATION
//

type LDAConfig struct {
	LDAIterations  int
	LDAXformPasses int
	BurnInPasses   int
	ChangeEvalFrq  int
	PerplexEvalFrq int
	PerplexTol     float64
}

var (
	DefaultLDAConfig = LDAConfig{
		LDAIterations:  vv.LDAITER,
		LDAXformPasses: vv.LDAXFORMPASSES,
		BurnInPasses:   vv.LDABURNINPASSES,
		ChangeEvalFrq:  vv.LDACHGEVALFRQ,
		PerplexEvalFrq: vv.LDAPERPEVALFRQ,
		PerplexTol:     vv.LDAPERPTOL,
	}
)

// LoadLDAConfig - read dir/vv.CONFIGLDA; if it does not exist write the defaults there and report that it was written
func LoadLDAConfig(dir string) (LDAConfig, bool, error) {
	const (
		FAIL1 = "failed to parse %s: %w"
		FAIL2 = "failed to write %s: %w"
	)

	fn := filepath.Join(dir, vv.CONFIGLDA)
	cfg := DefaultLDAConfig

	content, err := os.ReadFile(fn)
	if errors.Is(err, fs.ErrNotExist) {
		content, err = json.MarshalIndent(cfg, "", vv.JSONINDENT)
		if err != nil {
			return cfg, false, err
		}
		if err = os.MkdirAll(dir, vv.DIRPERMS); err == nil {
			err = os.WriteFile(fn, content, vv.WRITEPERMS)
		}
		if err != nil {
			return cfg, false, fmt.Errorf(FAIL2, fn, err)
		}
		return cfg, true, nil
	} else if err != nil {
		return cfg, false, err
	}

	if err = json.Unmarshal(content, &cfg); err != nil {
		return DefaultLDAConfig, false, fmt.Errorf(FAIL1, fn, err)
	}
	cfg.fillzeros()
	return cfg, false, nil
}

// fillzeros - an old or hand-trimmed file might leave some of these at zero; that is very bad...
func (c *LDAConfig) fillzeros() {
	if c.LDAIterations <= 0 {
		c.LDAIterations = vv.LDAITER
	}
	if c.LDAXformPasses <= 0 {
		c.LDAXformPasses = vv.LDAXFORMPASSES
	}
	if c.BurnInPasses <= 0 {
		c.BurnInPasses = vv.LDABURNINPASSES
	}
	if c.ChangeEvalFrq <= 0 {
		c.ChangeEvalFrq = vv.LDACHGEVALFRQ
	}
	if c.PerplexEvalFrq <= 0 {
		c.PerplexEvalFrq = vv.LDAPERPEVALFRQ
	}
	if c.PerplexTol <= 0 {
		c.PerplexTol = vv.LDAPERPTOL
	}
}
