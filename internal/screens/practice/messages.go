package practice

// setsListedMsg carries the result of listing the question directory at startup.
type setsListedMsg struct {
	IDs []string
	Err error
}

// feedbackDoneMsg ends the success banner started by the submission with the
// same sequence number.
type feedbackDoneMsg struct {
	seq int
}
