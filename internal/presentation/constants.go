package presentation

const (
	IDParam   = "id"
	FileField = "file"
	ReasonTag = "X-Reason"
	RouteKey  = "route"
)
