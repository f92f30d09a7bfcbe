package errormsg

import "errors"

// CodedError is implemented by every error a caller is allowed to see verbatim.
// Code is stable across languages, Param names the offending input.
type CodedError interface {
	error
	Code() string
	Param() string
}

func messageOr(message string, key string) string {
	if message == "" {
		return key
	}

	return message
}

func extensions(err CodedError) map[string]interface{} {
	return map[string]interface{}{
		"code":  err.Code(),
		"param": err.Param(),
	}
}

// IsNotFound reports whether err is one of the "entity does not exist" errors.
func IsNotFound(err error) bool {
	var userNotFound *UserNotFoundError
	var fundNotFound *FundNotFoundError

	return errors.As(err, &userNotFound) || errors.As(err, &fundNotFound)
}

// IsNotAuthorized reports whether err denies the operation to the requesting user.
func IsNotAuthorized(err error) bool {
	var notAuthorized *UserNotAuthorizedError

	return errors.As(err, &notAuthorized)
}
