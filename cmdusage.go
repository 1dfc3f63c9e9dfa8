// Copyright 2020 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Usage of duim
//
//	usage: duim [-l LENGTH] [-H] [TARGET]
//
//	duim displays the disk usage of each of the immediate subdirectories of a
//	target directory, and of the target itself, together with a bar graph of
//	each one's share of the total. The sizes are obtained by running du with a
//	depth of 1. Diagnostics from du that indicate that a directory could not be
//	read are not displayed.
//
//	  TARGET
//	    	directory to scan (default: current directory)
//	  -H	shorthand for --human-readable
//	  -config string
//	    	configuration file (default "$HOME/.duim.yml")
//	  -config-doc
//	    	describe the configuration file format and exit
//	  -format string
//	    	report format, one of text, json, tsv or markdown (default "text")
//	  -human-readable
//	    	scale byte sizes into K/M/G/T units
//	  -l int
//	    	shorthand for --length (default 20)
//	  -length int
//	    	bar graph width in characters (default 20)
//	  -log-dir string
//	    	directory to write log files to, defaults to the system temporary directory
//	  -show-config
//	    	display the configuration that would be used and exit
//	  -stderr
//	    	write log messages to stderr
//	  -top-n int
//	    	display only this many of the largest entries, 0 for all
//	  -v int
//	    	log messages at or above this level, lower values show more debugging output (default 8)
//
// Exit status is 0 on success, 2 if the command line could not be parsed
// and 1 for all other failures, including a target that is not a directory
// or a disk usage utility that cannot be run.
package main
