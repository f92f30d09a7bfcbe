package errormsg

// Message keys, passed through the translator before reaching the caller.
const (
	UserNotFoundMessage      = "user.notFound"
	UserNotAuthorizedMessage = "user.notAuthorized"
)

type UserNotFoundError struct {
	Message string
}

type UserNotAuthorizedError struct {
	Message string
}

func (u *UserNotFoundError) Error() string {
	return messageOr(u.Message, UserNotFoundMessage)
}

func (u *UserNotFoundError) Code() string {
	return "user.notFound"
}

func (u *UserNotFoundError) Param() string {
	return "user"
}

func (u *UserNotFoundError) Extensions() map[string]interface{} {
	return extensions(u)
}

func (u *UserNotAuthorizedError) Error() string {
	return messageOr(u.Message, UserNotAuthorizedMessage)
}

func (u *UserNotAuthorizedError) Code() string {
	return "user.notAuthorized"
}

func (u *UserNotAuthorizedError) Param() string {
	return "userAuthorization"
}

func (u *UserNotAuthorizedError) Extensions() map[string]interface{} {
	return extensions(u)
}
