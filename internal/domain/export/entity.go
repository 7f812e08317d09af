package export

import "errors"

type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantEnhanced Variant = "enhanced"
)

var ErrInvalidVariant = errors.New("variant must be basic or enhanced")

// Column headers of the member sheets, in column order.
var (
	BasicHeader = []string{
		"الاسم", "رقم الواتساب", "البريد الإلكتروني", "يوم الإجازة", "وقت الحضور", "وقت الانصراف", "الحالة",
	}
	EnhancedHeader = []string{
		"الاسم", "الواتساب", "الإيميل", "يوم الإجازة", "وقت الحضور", "وقت الانصراف",
		"الراتب الأساسي", "التقييم", "عدد الإنذارات", "أيام الحضور",
	}
)

// Presence labels used in the basic sheet.
const (
	LabelPresent = "حاضر"
	LabelAbsent  = "منصرف"
)

// File is a rendered export ready to be served.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}
