// Command staticlint запускает набор статических анализаторов проекта.
//
// Использование:
//
//	go run ./cmd/staticlint ./...
//
// В набор входят стандартные анализаторы golang.org/x/tools, анализаторы
// staticcheck (SA, S и ST без проверок оформления документации), go-critic,
// errcheck и собственный errleak.
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"

	"golang.org/x/tools/go/analysis/passes/asmdecl"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/timeformat"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"

	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
)

// Проверки stylecheck, которые не подходят для документации на русском языке
var skippedStyleChecks = map[string]bool{
	"ST1000": true, // комментарий пакета
	"ST1020": true, // комментарий экспортируемой функции
	"ST1021": true, // комментарий экспортируемого типа
	"ST1022": true, // комментарий экспортируемой переменной
}

func standardAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		asmdecl.Analyzer,
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		// Тела ответов backend закрываются в клиенте, проверка защищает от утечек соединений
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		timeformat.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
	}
}

func staticcheckAnalyzers() []*analysis.Analyzer {
	var checks []*analysis.Analyzer
	for _, group := range [][]*lint.Analyzer{staticcheck.Analyzers, simple.Analyzers, stylecheck.Analyzers} {
		for _, v := range group {
			if skippedStyleChecks[v.Analyzer.Name] {
				continue
			}
			checks = append(checks, v.Analyzer)
		}
	}
	return checks
}

func main() {
	checks := []*analysis.Analyzer{
		ErrLeakAnalyzer,
		analyzer.Analyzer, // go-critic
		errcheck.Analyzer,
	}
	checks = append(checks, standardAnalyzers()...)
	checks = append(checks, staticcheckAnalyzers()...)

	multichecker.Main(checks...)
}
