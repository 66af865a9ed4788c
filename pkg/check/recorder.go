package check

// Recorder receives results as checks produce them. Check groups record
// each result the moment it is known so the report can show progress
// live instead of after the whole run.
//
// Implementations:
//   - suite.Recorder: appends to the run's result list and forwards to
//     the report for immediate printing
type Recorder interface {
	Record(Result)
}
