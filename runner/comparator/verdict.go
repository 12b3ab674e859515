package comparator

// Exit codes returned to the invoking environment.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ResolveVerdict decides the process exit code. Regressions fail the run only
// in strict mode; without it the run reports them and still exits zero. This
// is the last thing evaluated, after all reports have been emitted.
func ResolveVerdict(hasRegression, strict bool) int {
	if hasRegression && strict {
		return ExitFailure
	}
	return ExitSuccess
}
