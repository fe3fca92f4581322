package errors

// Code represents an error code
type Code string

// Error codes. The set is deliberately small: orchestrators validate
// with InvalidArgument, repositories miss with NotFound, cancellation
// surfaces as Canceled, and everything else is Internal.
const (
	CodeOK              Code = "OK"
	CodeCanceled        Code = "CANCELED"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
