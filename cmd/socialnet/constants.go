package main

// Output formats accepted by the --format flag.
const (
	formatBasic = "basic"
	formatMore  = "more"
	formatCSV   = "csv"
	formatJSON  = "json"
)

var validFormats = []string{formatBasic, formatMore, formatCSV, formatJSON}

// birthDateLayout is used when printing birth dates, matching the input files.
const birthDateLayout = "2-1-2006"
