package check

import "fmt"

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check. One Result is recorded per
// check, in the order the checks run; that order is the report order.
type Result struct {
	ID      ID       // stable tag, e.g. ToolNode
	Name    string   // display name, e.g. "Node.js 安装"
	Status  Status   // OK or FAIL
	Message string   // outcome shown to the user, e.g. "v22.1.0" or "未安装"
	Details []string // extra lines for verbose output
	Err     error    // underlying error for failures, used for logging
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Pass returns an OK result for id with the given message.
func Pass(id ID, message string) Result {
	return Result{ID: id, Name: DisplayName(id), Status: StatusOK, Message: message}
}

// Fail returns a failed result for id. err may be nil when the failure
// is an expected condition rather than an underlying error.
func Fail(id ID, message string, err error) Result {
	return Result{ID: id, Name: DisplayName(id), Status: StatusFail, Message: message, Err: err}
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
