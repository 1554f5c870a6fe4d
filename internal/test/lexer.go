package test

import (
	"fmt"
	"math/rand"
	"strings"
)

var validTokens = []string{
	"if", "else", "while", "true", "false",
	"foo", "bar", "count", "x",
	"(", ")", "{", "}",
	"+", "-", "*", "/", "=", "==", "!=", "<", ">", "&&", "||", "!", ",", ";",
	"123", "321", "4.5", "0.25",
}

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	var toks []string
	for len(toks) < size {
		toks = append(toks, validTokens[rand.Intn(len(validTokens))])
	}

	return strings.Join(toks, sep)
}

// GetAssignmentProgram builds a valid program of n chained assignments, for
// parser and evaluator benchmarks.
func GetAssignmentProgram(n int) string {
	var b strings.Builder
	b.WriteString("x0 = 1;\n")
	for i := 1; i < n; i++ {
		fmt.Fprintf(&b, "x%d = x%d + %d;\n", i, i-1, i)
	}

	return b.String()
}
