package http

// Status pairs an HTTP status code with its default message.
type Status struct {
	Code    int
	Message string
}

func (s Status) String() string { return s.Message }

var (
	// 2xx
	StatusOK        = Status{200, "OK"}
	StatusCreated   = Status{201, "Created"}
	StatusAccepted  = Status{202, "Accepted"}
	StatusNoContent = Status{204, "No Content"}

	// 4xx
	StatusBadRequest           = Status{400, "Bad Request"}
	StatusNotFound             = Status{404, "Not Found"}
	StatusMethodNotAllowed     = Status{405, "Method Not Allowed"}
	StatusUnsupportedMediaType = Status{415, "Unsupported Media Type"}
	StatusUnprocessableEntity  = Status{422, "Unprocessable Entity"}

	// 5xx
	StatusInternalServerError = Status{500, "Internal Server Error"}
)
