package notification

// ListRequest narrows the authenticated actor's notifications.
type ListRequest struct {
	UnreadOnly bool `json:"unreadOnly"`
}

// ListResponse is the actor's notifications, newest first.
type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}
