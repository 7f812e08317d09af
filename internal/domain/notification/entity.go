package notification

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeRequestApproved NotificationType = "request_approved"
	TypeRequestRejected NotificationType = "request_rejected"
)

// MaxPerRecipient bounds how many notifications are kept per recipient.
const MaxPerRecipient = 100

// Notification represents an in-app notification entity
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipientId"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	RequestID   string           `json:"requestId,omitempty"`
	IsRead      bool             `json:"isRead"`
	ReadAt      *time.Time       `json:"readAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (n *Notification) UnmarshalJSON(b []byte) error {
	type plain Notification
	aux := struct {
		*plain
		ID          jsonx.ID    `json:"id"`
		RecipientID jsonx.ID    `json:"recipientId"`
		RequestID   jsonx.ID    `json:"requestId"`
		ReadAt      *jsonx.Time `json:"readAt"`
		CreatedAt   jsonx.Time  `json:"createdAt"`
	}{plain: (*plain)(n)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	n.ID = string(aux.ID)
	n.RecipientID = string(aux.RecipientID)
	n.RequestID = string(aux.RequestID)
	n.ReadAt = aux.ReadAt.Ptr()
	n.CreatedAt = aux.CreatedAt.Std()
	return nil
}

// Push appends n and drops the recipient's oldest entries past MaxPerRecipient.
func Push(list []Notification, n Notification) []Notification {
	list = append(list, n)

	count := 0
	for _, x := range list {
		if x.RecipientID == n.RecipientID {
			count++
		}
	}
	if count <= MaxPerRecipient {
		return list
	}

	drop := count - MaxPerRecipient
	kept := make([]Notification, 0, len(list)-drop)
	for _, x := range list {
		if drop > 0 && x.RecipientID == n.RecipientID {
			drop--
			continue
		}
		kept = append(kept, x)
	}
	return kept
}

// WhatsAppLink builds a wa.me deep link with a prefilled message. Non-digit
// characters are stripped from phone.
func WhatsAppLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}
