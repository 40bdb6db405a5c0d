//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/stretchr/testify/assert"
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	c := CurrentConfiguration{
		DataDir:       "data",
		CorpusFile:    vv.CORPUSFILE,
		DocTopicsFile: vv.DOCTOPICSFILE,
		KeywordsFile:  vv.KEYWORDSFILE,
		SceneFile:     vv.SCENEFILE,
		StopwordFile:  vv.STOPWORDFILE,
	}
	assert.Equal(t, filepath.Join("data", vv.CORPUSFILE), c.CorpusPath())
	assert.Equal(t, filepath.Join("data", vv.DOCTOPICSFILE), c.DocTopicsPath())
	assert.Equal(t, filepath.Join("data", vv.KEYWORDSFILE), c.KeywordsPath())
	assert.Equal(t, filepath.Join("data", vv.STOPWORDFILE), c.StopwordPath())
	assert.Equal(t, filepath.Join("data", vv.PROCESSEDDIR, vv.SCENEFILE), c.ScenePath())
}
