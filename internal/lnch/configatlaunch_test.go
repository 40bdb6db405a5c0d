//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, vv.LDATOPICS, c.LdaTopics)
	assert.Equal(t, uint64(vv.LDASEED), c.LdaSeed)
	assert.Equal(t, filepath.Join("data", "michelin_full.xlsx"), c.CorpusPath())
	assert.Equal(t, filepath.Join("data", "processed", "michelin_with_scene.xlsx"), c.ScenePath())
}

func TestReadConfigFileWithoutFile(t *testing.T) {
	c := BuildDefaultConfig()
	used, err := ReadConfigFile(c, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, BuildDefaultConfig(), c)
}

func TestReadConfigFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	js := `{"DataDir": "/srv/faw", "LdaTopics": 5, "HostPort": 8123, "LdaSeed": 7}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.CONFIGBASIC+".json"), []byte(js), 0644))
	t.Setenv("FAW_LOGLEVEL", "4")

	c := BuildDefaultConfig()
	used, err := ReadConfigFile(c, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, vv.CONFIGBASIC+".json"), used)
	assert.Equal(t, "/srv/faw", c.DataDir)
	assert.Equal(t, 5, c.LdaTopics)
	assert.Equal(t, 8123, c.HostPort)
	assert.Equal(t, uint64(7), c.LdaSeed)
	assert.Equal(t, 4, c.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, vv.CORPUSFILE, c.CorpusFile)
}

func TestReadConfigFileRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.CONFIGBASIC+".json"), []byte(`{"DataDir": `), 0644))
	_, err := ReadConfigFile(BuildDefaultConfig(), dir)
	assert.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	c := BuildDefaultConfig()
	want, err := ParseArgs(c, []string{"-gl", "5", "-tp", "12", "-sd", "99", "-dd", "elsewhere", "-bw", "-sp", "9000", "-md", "stub"})
	require.NoError(t, err)
	assert.Equal(t, WantRun, want)
	assert.Equal(t, 5, c.LogLevel)
	assert.Equal(t, 12, c.LdaTopics)
	assert.Equal(t, uint64(99), c.LdaSeed)
	assert.Equal(t, "elsewhere", c.DataDir)
	assert.True(t, c.BlackAndWhite)
	assert.Equal(t, 9000, c.HostPort)
	assert.Equal(t, "stub", c.Fitter)

	want, err = ParseArgs(BuildDefaultConfig(), []string{"-h"})
	require.NoError(t, err)
	assert.Equal(t, WantHelp, want)

	want, err = ParseArgs(BuildDefaultConfig(), []string{"-vv"})
	require.NoError(t, err)
	assert.Equal(t, WantFullVersion, want)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := ParseArgs(BuildDefaultConfig(), []string{"-gl"})
	assert.Error(t, err)

	_, err = ParseArgs(BuildDefaultConfig(), []string{"-sp", "eighty"})
	assert.Error(t, err)
}

func TestParseArgsClampsTopics(t *testing.T) {
	c := BuildDefaultConfig()
	_, err := ParseArgs(c, []string{"-tp", "500"})
	require.NoError(t, err)
	assert.Equal(t, vv.LDAMAXTOPICS, c.LdaTopics)

	_, err = ParseArgs(c, []string{"-tp", "0"})
	require.NoError(t, err)
	assert.Equal(t, vv.LDATOPICS, c.LdaTopics)
}

func TestHelpText(t *testing.T) {
	h := HelpText(*BuildDefaultConfig())
	assert.Contains(t, h, "-tp")
	assert.Contains(t, h, vv.CONFIGBASIC)
	assert.Contains(t, h, "lda")
	assert.NotContains(t, h, "{{")
}
