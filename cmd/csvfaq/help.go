package main

import (
	"fmt"
	"io"
	"strings"
)

func printHelp(w io.Writer) {
	rule := strings.Repeat("-", 47)
	fmt.Fprintf(w, `
%[1]s
This tool requires certain command-line inputs:
%[1]s

To get a pretty printing of your data's columns, make sure you pass in
the data (with a header line containing column names, separated by commas) like so:

	$ %[2]s <file>.csv

We suggest running the above if you're not sure exactly what column
you'd like to analyze. Once you know what column you're looking to
explore, run the following to actually analyze:

	$ %[2]s <file>.csv '<column name case-sensitive>'

Note: you can also submit multiple columns to be evaluated within one run,
or :all to evaluate every column:

	$ %[2]s <file>.csv '<column 1>' '<column 2>' ... '<column n>'
	$ %[2]s <file>.csv :all

`, rule, progName)
}
