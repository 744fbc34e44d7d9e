package linenotify

// pushRequest тело запроса LINE Messaging API push
type pushRequest struct {
	To       string    `json:"to"`
	Messages []message `json:"messages"`
}

// message текстовое сообщение LINE
type message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// errorResponse модель ошибки от LINE API
type errorResponse struct {
	Message string `json:"message"`
}
