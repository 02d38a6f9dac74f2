package debug

import (
	"os"
	"strconv"
)

type flags struct {
	Shape bool
	Parse bool
	Query bool
	Color bool
}

var f *flags

func init() {
	f = &flags{
		Shape: boolEnv("CON_DEBUG_SHAPE"),
		Parse: boolEnv("CON_DEBUG_PARSE"),
		Query: boolEnv("CON_DEBUG_QUERY"),
		Color: boolEnv("CON_DEBUG_COLOR"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Shape reports whether CON_DEBUG_SHAPE is set, requesting that callers log
// the shape.Classify decision made for each array they emit.
func Shape() bool { return f.Shape }

// Parse reports whether CON_DEBUG_PARSE is set, requesting that callers log
// each line-shape dispatch decision made while parsing.
func Parse() bool { return f.Parse }

// Query reports whether CON_DEBUG_QUERY is set, requesting that query.Select
// log the compiled expression and its result.
func Query() bool { return f.Query }

// Color reports whether CON_DEBUG_COLOR forces colorized Dump output even
// when the destination isn't a terminal.
func Color() bool { return f.Color }
