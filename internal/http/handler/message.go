package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	PathRegister     = "/register"
	PathLogin        = "/login"
	PathFollows      = "/fllws/{username}"
	PathMessages     = "/msgs"
	PathUserMessages = "/msgs/{username}"
	PathLatest       = "/latest"
	PathMetrics      = "/metrics"
)

const (
	usernameVar = "username"
	latestParam = "latest"
	noParam     = "no"
)
