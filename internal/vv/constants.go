//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "ForksAndWords"
	SHORTNAME = "FAW"
	VERSION   = "1.1.0"

	BLACKANDWHITE            = false
	CONFIGALTAPTH            = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC              = "faw-conf"    // viper adds the extension
	CONFIGTYPE               = "json"
	CUSTOMCSSFILENAME        = "faw-custom.css"
	CONFIGLOCATION           = "."
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = 2
	ENVPREFIX                = "FAW"
	JSONINDENT               = "  "
	MAXECHOREQPERSECONDPERIP = 40
	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8000
	TIMEOUTRD                = 15 * time.Second
	TIMEOUTWR                = 60 * time.Second
	USEGZIP                  = false
	WRITEPERMS               = 0644
	DIRPERMS                 = 0755
)

// dashboard colors
const (
	CSSTOKEN  = "#89CFF0"
	CSSSTOP   = "#e07b39"
	CSSACCENT = "#ff4b4b"
	CSSPAPER  = "#f9f9f9"
)

// files in the data folder
const (
	DATADIR        = "data"
	PROCESSEDDIR   = "processed"
	CORPUSFILE     = "michelin_full.xlsx"
	STOPWORDFILE   = "stopwords_custom.txt"
	DOCTOPICSFILE  = "michelin_with_topics.xlsx"
	KEYWORDSFILE   = "lda_topic_keywords.csv"
	SCENEFILE      = "michelin_with_scene.xlsx"
	MANIFESTFILE   = "run_manifest.json"
	PARTIALPREFIX  = ".partial-"
	DEFAULTXLSXTAB = "Sheet1"
)

// column names shared by the pipeline and the dashboard
const (
	COLTEXT      = "description"
	COLTOKENS    = "tokens"
	COLDOMINANT  = "dominant_topic"
	COLTOPICID   = "topic_id"
	COLTOPWORDS  = "top_words"
	COLCONSTYPE  = "consumer_type"
	COLCONSSCENE = "consumer_scene"
	COLNAME      = "restaurant"
	COLSTAR      = "star"
	COLPRICE     = "price($)"
	COLTAG       = "tag"
	COLLAT       = "lat"
	COLLON       = "lon"
	TOPWORDSEP   = ", "
	TAGSEP       = ","
)
