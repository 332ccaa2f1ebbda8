package exitcode

const (
	Success         = 0
	UsageError      = 1
	FileAccessError = 2 // only used when strict_exit is set
	LoadError       = 3
	AnalyzeError    = 4
)
