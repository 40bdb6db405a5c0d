//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the  
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or 
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2025"
	PROJAUTH = "Group K"
	PROJMAIL = "QMSS, Columbia University GSAS, New York, NY 10027"
	PROJURL  = "https://github.com/fc9399/ForksAndWords"

	MENUTEXT = `
S1ForksAndWordsS0 C6·C0 Michelin description topic pipeline
   C11C0  run topic modeling (LDA)
   C12C0  merge scene labels into the topic table
   C13C0  start the visualization dashboard
   C10C0  exit
`
	MENUPROMPT = "select an option: "

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-ddC0 C2{string}C0 data folder [C6currentC0: C3{{.datadir}}C0]
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.fawll}}C0]
   C1-gzC0          enable gzip compression of the server's output
   C1-hC0           print this help information
   C1-mdC0 C2{string}C0 topic model [C6availableC0: C3{{.fitters}}C0][C6currentC0: C3{{.fitter}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-qC0           quiet startup: suppress copyright notice
   C1-saC0 C2{string}C0 server IP address [C6currentC0: C3{{.host}}C0]
   C1-sdC0 C2{num}C0    random seed for the topic model [C6currentC0: C3{{.seed}}C0]
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-tpC0 C2{num}C0    number of topics (C11-{{.maxtopics}}C0) [C6currentC0: C3{{.topics}}C0]
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit

     S1NB:S0 "C3{{.conffile}}.jsonC0" in "C3{{.cwd}}C0" or "C3{{.home}}C0" configures everything for you.
         Environment variables with the prefix "C3{{.envprefix}}_C0" override the file.
         Topic model settings live in "C3{{.home}}{{.ldaconf}}C0".
             C3{{.projurl}}C0
`
)
