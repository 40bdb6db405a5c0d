//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/vec"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/spf13/viper"
	"os"
	"strconv"
	"strings"
	"text/template"
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// what the command line asked for besides settings
const (
	WantRun = iota
	WantHelp
	WantVersion
	WantFullVersion
)

// ConfigAtLaunch - defaults, then the config file and environment, then the command line
func ConfigAtLaunch() {
	const (
		MSG1 = "read configuration from '%s'"
		MSG2 = "no configuration file found; using built-in defaults"
	)

	cfg := BuildDefaultConfig()

	used, err := ReadConfigFile(cfg, ConfigDirs()...)
	Msg.EC(err)

	want, err := ParseArgs(cfg, os.Args[1:])
	Msg.EC(err)

	Config = cfg
	UpdateMessageMakerWithConfig(Msg)

	switch want {
	case WantHelp:
		PrintVersion(*Config)
		PrintBuildInfo(*Config)
		fmt.Println(Msg.ColStyle(HelpText(*Config)))
		os.Exit(0)
	case WantVersion:
		fmt.Println(vv.VERSION + VersSuppl)
		os.Exit(0)
	case WantFullVersion:
		PrintVersion(*Config)
		PrintBuildInfo(*Config)
		os.Exit(0)
	}

	if used != "" {
		Msg.TMI(fmt.Sprintf(MSG1, used))
	} else {
		Msg.TMI(MSG2)
	}
}

// ConfigDirs - the working directory first and then ~/.config/
func ConfigDirs() []string {
	dirs := []string{vv.CONFIGLOCATION}
	if h, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, fmt.Sprintf(vv.CONFIGALTAPTH, h))
	}
	return dirs
}

// ReadConfigFile - overlay the first faw-conf.json found in dirs and any FAW_* environment variables onto cfg
func ReadConfigFile(cfg *str.CurrentConfiguration, dirs ...string) (string, error) {
	const (
		FAIL1 = "could not parse the configuration file: %w"
		FAIL2 = "could not apply the configuration: %w"
	)

	v := viper.New()
	v.SetConfigName(vv.CONFIGBASIC)
	v.SetConfigType(vv.CONFIGTYPE)
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetEnvPrefix(vv.ENVPREFIX)
	v.AutomaticEnv()

	// every key needs a default: AutomaticEnv only sees keys that viper already knows about
	v.SetDefault("BlackAndWhite", cfg.BlackAndWhite)
	v.SetDefault("CorpusFile", cfg.CorpusFile)
	v.SetDefault("DataDir", cfg.DataDir)
	v.SetDefault("DocTopicsFile", cfg.DocTopicsFile)
	v.SetDefault("EchoLog", cfg.EchoLog)
	v.SetDefault("Fitter", cfg.Fitter)
	v.SetDefault("Gzip", cfg.Gzip)
	v.SetDefault("HostIP", cfg.HostIP)
	v.SetDefault("HostPort", cfg.HostPort)
	v.SetDefault("KeywordsFile", cfg.KeywordsFile)
	v.SetDefault("LdaSeed", cfg.LdaSeed)
	v.SetDefault("LdaTopics", cfg.LdaTopics)
	v.SetDefault("LdaTopWords", cfg.LdaTopWords)
	v.SetDefault("LogLevel", cfg.LogLevel)
	v.SetDefault("ProfileCPU", cfg.ProfileCPU)
	v.SetDefault("ProfileMEM", cfg.ProfileMEM)
	v.SetDefault("QuietStart", cfg.QuietStart)
	v.SetDefault("SceneFile", cfg.SceneFile)
	v.SetDefault("StopwordFile", cfg.StopwordFile)
	v.SetDefault("TextColumn", cfg.TextColumn)

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return "", fmt.Errorf(FAIL1, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return "", fmt.Errorf(FAIL2, err)
	}

	clamptopics(cfg)
	if cfg.LdaTopWords < 1 {
		cfg.LdaTopWords = vv.LDATOPWORDS
	}
	return v.ConfigFileUsed(), nil
}

// ParseArgs - command line switches override everything else
func ParseArgs(cfg *str.CurrentConfiguration, args []string) (int, error) {
	const (
		FAIL1 = "'%s' needs a value"
		FAIL2 = "'%s' needs a number: %w"
	)

	want := WantRun

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf(FAIL1, args[i])
		}
		return args[i+1], nil
	}

	num := func(i int) (int, error) {
		s, err := next(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf(FAIL2, args[i], err)
		}
		return n, nil
	}

	var err error
	var s string
	for i, a := range args {
		switch a {
		case "-vv":
			want = WantFullVersion
		case "-v":
			want = WantVersion
		case "-h":
			want = WantHelp
		case "-bw":
			cfg.BlackAndWhite = true
		case "-dd":
			s, err = next(i)
			cfg.DataDir = s
		case "-el":
			cfg.EchoLog, err = num(i)
		case "-gl":
			cfg.LogLevel, err = num(i)
		case "-gz":
			cfg.Gzip = true
		case "-md":
			s, err = next(i)
			cfg.Fitter = s
		case "-pc":
			cfg.ProfileCPU = true
		case "-pm":
			cfg.ProfileMEM = true
		case "-q":
			cfg.QuietStart = true
		case "-sa":
			s, err = next(i)
			cfg.HostIP = s
		case "-sd":
			var sd int
			sd, err = num(i)
			cfg.LdaSeed = uint64(sd)
		case "-sp":
			cfg.HostPort, err = num(i)
		case "-tp":
			cfg.LdaTopics, err = num(i)
		default:
			// do nothing
		}
		if err != nil {
			return want, err
		}
	}

	clamptopics(cfg)
	return want, nil
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.CorpusFile = vv.CORPUSFILE
	c.DataDir = vv.DATADIR
	c.DocTopicsFile = vv.DOCTOPICSFILE
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.Fitter = vv.DEFAULTFITTER
	c.Gzip = vv.USEGZIP
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.KeywordsFile = vv.KEYWORDSFILE
	c.LdaSeed = vv.LDASEED
	c.LdaTopics = vv.LDATOPICS
	c.LdaTopWords = vv.LDATOPWORDS
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.SceneFile = vv.SCENEFILE
	c.StopwordFile = vv.STOPWORDFILE
	c.TextColumn = vv.COLTEXT
	return &c
}

// HelpText - the -h output, still carrying its color pseudo-tags
func HelpText(cc str.CurrentConfiguration) string {
	const (
		FAIL1 = "HelpText() failed to execute help text template"
	)

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "(unknown)"
	}
	h := "~/.config/"
	if uh, e := os.UserHomeDir(); e == nil {
		h = fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	}

	m := map[string]interface{}{
		"conffile":  vv.CONFIGBASIC,
		"cwd":       cwd,
		"datadir":   cc.DataDir,
		"echoll":    cc.EchoLog,
		"envprefix": vv.ENVPREFIX,
		"fawll":     cc.LogLevel,
		"fitter":    cc.Fitter,
		"fitters":   strings.Join(vec.FitterNames(), "C0, C3"),
		"home":      h,
		"host":      cc.HostIP,
		"ldaconf":   vv.CONFIGLDA,
		"maxtopics": vv.LDAMAXTOPICS,
		"port":      cc.HostPort,
		"projurl":   vv.PROJURL,
		"seed":      cc.LdaSeed,
		"topics":    cc.LdaTopics,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, m); ee != nil {
		Msg.CRIT(FAIL1)
	}
	return strings.TrimRight(b.String(), "\n")
}

func clamptopics(cfg *str.CurrentConfiguration) {
	const (
		WARN1 = "refusing to fit %d topics; using %d instead"
	)
	k := cfg.LdaTopics
	switch {
	case k < 1:
		cfg.LdaTopics = vv.LDATOPICS
	case k > vv.LDAMAXTOPICS:
		cfg.LdaTopics = vv.LDAMAXTOPICS
	default:
		return
	}
	Msg.WARN(fmt.Sprintf(WARN1, k, cfg.LdaTopics))
}
