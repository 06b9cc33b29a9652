package hotel

const (
	operationSetRoom  = "set_room"
	operationSetUser  = "set_user"
	operationBookRoom = "book_room"
	operationClearAll = "clear_all"

	operationStatusOK    = "ok"
	operationStatusError = "error"
)
