package systemcodes

const (
	ErrorCodeGeneric     = 1
	ErrorCodePush        = 2
	ErrorCodeTracker     = 3
	ErrorCodePollTimeout = 4
	ErrorCodeRemotes     = 5
	ErrorCodeInterrupted = 130
	SuccessCode          = 0
)
