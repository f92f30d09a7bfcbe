package httperrors

import (
	"errors"
	"net/http"

	"github.com/Vaishali054/talawa-api/pkg/errormsg"
	"github.com/go-chi/render"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	AppCode    string `json:"code,omitempty"`  // application-specific error code
	ErrorText  string `json:"error,omitempty"` // application-level error message
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "invalid request",
		ErrorText:      err.Error(),
	}
}

func ErrServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "server error",
		ErrorText:      "internal server error",
	}
}

func ErrNotFound(err errormsg.CodedError) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "resource not found",
		AppCode:        err.Code(),
		ErrorText:      err.Error(),
	}
}

func ErrForbidden(err errormsg.CodedError) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusForbidden,
		StatusText:     "forbidden",
		AppCode:        err.Code(),
		ErrorText:      err.Error(),
	}
}

// FromError picks the response matching a service error.
func FromError(err error) render.Renderer {
	var coded errormsg.CodedError

	if !errors.As(err, &coded) {
		return ErrServerError(err)
	}

	switch {
	case errormsg.IsNotFound(err):
		return ErrNotFound(coded)
	case errormsg.IsNotAuthorized(err):
		return ErrForbidden(coded)
	default:
		return ErrServerError(err)
	}
}
