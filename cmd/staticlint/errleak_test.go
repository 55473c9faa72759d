package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestErrLeakAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), ErrLeakAnalyzer, "a")
}
