package fhir

// ValidateCodeResult is the outcome of a $validate-code operation. A code
// that cannot be validated is reported with Result false, not as an error.
type ValidateCodeResult struct {
	Result  bool
	System  string
	Code    string
	Display string
	Message string
}

// Parameters renders the result as the $validate-code output Parameters.
func (r *ValidateCodeResult) Parameters() *Parameters {
	return NewParameters().
		AddBoolean("result", r.Result).
		AddString("message", r.Message).
		AddString("display", r.Display).
		AddURI("system", r.System).
		AddCode("code", r.Code)
}
