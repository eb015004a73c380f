package response

const (
	MessageSuccess  = "Success"
	MessageAccepted = "Accepted"

	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 1
	UnauthorizedErrorCode    = 401
	ConflictErrorCode        = 409
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500
)
