package domain

// StepStatus is the outcome of one post-classification side-effect step.
type StepStatus string

const (
	// StepOK means the step completed.
	StepOK StepStatus = "ok"
	// StepSkipped means the step did not apply to this lead.
	StepSkipped StepStatus = "skipped"
	// StepFailed means the step was attempted and failed; the pipeline
	// degrades rather than aborting.
	StepFailed StepStatus = "failed"
)

// StepResult carries a step status plus detail for the notification:
// the skip reason or the underlying error message.
type StepResult struct {
	Status StepStatus `json:"status"`
	Detail string     `json:"detail,omitempty"`
}

// StepDone returns an ok result.
func StepDone() StepResult { return StepResult{Status: StepOK} }

// StepSkip returns a skipped result with the given reason.
func StepSkip(reason string) StepResult {
	return StepResult{Status: StepSkipped, Detail: reason}
}

// StepFail returns a failed result carrying the error message.
func StepFail(err error) StepResult {
	return StepResult{Status: StepFailed, Detail: err.Error()}
}

// Notification is the payload handed to the notification sink: the lead
// plus the statuses of the steps that ran before delivery.
type Notification struct {
	Lead         Lead       `json:"lead"`
	Persist      StepResult `json:"persist"`
	Archive      StepResult `json:"archive"`
	AutoResponse StepResult `json:"auto_response"`
	Duplicate    bool       `json:"duplicate"`
}
