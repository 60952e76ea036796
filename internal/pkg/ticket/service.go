package ticket

import "fmt"

const (
	serviceMinLen = 3
	serviceMaxLen = 32
)

// Service names the web-service node a request targets. A Service value
// is always well-formed: length 3 to 32, first character an ASCII
// letter, remaining characters ASCII letters, digits, hyphen or
// underscore. Construct one through NewService.
type Service string

// NewService validates name and returns it as a Service. A violation is
// reported as a *ValidationError of kind ConstraintViolation naming the
// rule that failed.
func NewService(name string) (Service, error) {
	if err := checkService("service", name); err != nil {
		return "", err
	}
	return Service(name), nil
}

func (s Service) String() string {
	return string(s)
}

// checkService applies the service rules in order: length first, then
// the leading character, then the remaining character classes. The
// first failed rule is reported.
func checkService(path, name string) *ValidationError {
	if len(name) < serviceMinLen || len(name) > serviceMaxLen {
		return &ValidationError{
			Kind: ConstraintViolation,
			Path: path,
			Msg:  fmt.Sprintf("length must be between %d and %d characters, got %d", serviceMinLen, serviceMaxLen, len(name)),
		}
	}
	if !isASCIILetter(name[0]) {
		return &ValidationError{
			Kind: ConstraintViolation,
			Path: path,
			Msg:  fmt.Sprintf("first character must be an ASCII letter, got %q", name[0]),
		}
	}
	for i := 1; i < len(name); i++ {
		if !isServiceChar(name[i]) {
			return &ValidationError{
				Kind: ConstraintViolation,
				Path: path,
				Msg:  fmt.Sprintf("character %d must be an ASCII letter, digit, hyphen or underscore, got %q", i, name[i]),
			}
		}
	}
	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isServiceChar(c byte) bool {
	return isASCIILetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
