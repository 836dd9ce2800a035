package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	inmemdb "github.com/trezcool/kala/storage/inmem"
)

var (
	errInvalidCredentials = echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	errInvalidID          = echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
)

func notFound(what string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, what+" not found")
}

// newAppHTTPErrorHandler returns an echo.HTTPErrorHandler answering with the error bodies of the
// real backend: {"message": "..."} for plain errors and {"field": ["..."]} for field errors.
func newAppHTTPErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var body interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			body = echo.Map{"message": origErr.Message}
		case *core.ValidationError:
			code = http.StatusBadRequest
			if len(origErr.Fields) > 0 {
				flds := make(echo.Map, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					flds[fErr.Field] = []string{fErr.Error}
				}
				body = flds
			} else {
				body = echo.Map{"error": origErr.Error()}
			}
		default:
			switch errors.Cause(err) {
			case inmemdb.ErrEmailExists:
				code = http.StatusBadRequest
				body = echo.Map{"email": []string{"student with this email already exists."}}
			case inmemdb.ErrOverpaid:
				code = http.StatusBadRequest
				body = echo.Map{"error": "Amount exceeds pending fees"}
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				body = echo.Map{"detail": msg}
				logger.Error(msg, errors.Wrap(err, msg), map[string]interface{}{"path": ctx.Path()})
			}
		}

		if ctx.Echo().Debug && code == http.StatusInternalServerError {
			body = echo.Map{"detail": err.Error()}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, body)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
