package payroll

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Tier pays Amount once the measured value reaches Threshold.
type Tier struct {
	Threshold decimal.Decimal
	Amount    decimal.Decimal
}

// Policy holds the salary adjustment rates. Tier lists are ordered from the
// highest threshold down; only the first matching tier applies.
type Policy struct {
	LateDeductionPerMinute  decimal.Decimal
	EarlyDeductionPerMinute decimal.Decimal
	PerfectAttendanceBonus  decimal.Decimal
	PerfectAttendanceDays   int
	RatingBonusTiers        []Tier
	WarningDeductionTiers   []Tier
}

// DefaultPolicy returns the organization's standing rates.
func DefaultPolicy() Policy {
	return Policy{
		LateDeductionPerMinute:  decimal.NewFromInt(5),
		EarlyDeductionPerMinute: decimal.NewFromInt(10),
		PerfectAttendanceBonus:  decimal.NewFromInt(500),
		PerfectAttendanceDays:   20,
		RatingBonusTiers: []Tier{
			{Threshold: decimal.RequireFromString("4.5"), Amount: decimal.NewFromInt(1000)},
			{Threshold: decimal.RequireFromString("4.0"), Amount: decimal.NewFromInt(500)},
		},
		WarningDeductionTiers: []Tier{
			{Threshold: decimal.NewFromInt(3), Amount: decimal.NewFromInt(1000)},
			{Threshold: decimal.NewFromInt(2), Amount: decimal.NewFromInt(500)},
			{Threshold: decimal.NewFromInt(1), Amount: decimal.NewFromInt(200)},
		},
	}
}

// Input is everything the calculation reads about one member.
type Input struct {
	BaseSalary    decimal.Decimal
	Records       []attendance.Record // already restricted to the pay month
	AverageRating *decimal.Decimal
	WarningsCount int
}

// Breakdown itemizes how the final salary was reached.
type Breakdown struct {
	BaseSalary             decimal.Decimal `json:"baseSalary"`
	TotalLateMinutes       int             `json:"totalLateMinutes"`
	TotalEarlyMinutes      int             `json:"totalEarlyMinutes"`
	LateDeduction          decimal.Decimal `json:"lateDeduction"`
	EarlyDeduction         decimal.Decimal `json:"earlyDeduction"`
	WarningDeduction       decimal.Decimal `json:"warningDeduction"`
	PerfectAttendanceBonus decimal.Decimal `json:"perfectAttendanceBonus"`
	RatingBonus            decimal.Decimal `json:"ratingBonus"`
	Deductions             decimal.Decimal `json:"deductions"`
	Bonuses                decimal.Decimal `json:"bonuses"`
	FinalSalary            decimal.Decimal `json:"finalSalary"`
}

// Calculate applies p to in. The result is not floored at zero.
func (p Policy) Calculate(in Input) Breakdown {
	b := Breakdown{
		BaseSalary:             in.BaseSalary,
		WarningDeduction:       decimal.Zero,
		PerfectAttendanceBonus: decimal.Zero,
		RatingBonus:            decimal.Zero,
	}

	perfect := 0
	for _, r := range in.Records {
		b.TotalLateMinutes += r.LateMinutes
		b.TotalEarlyMinutes += r.EarlyMinutes
		if r.Status == attendance.StatusOnTime && r.EarlyMinutes == 0 {
			perfect++
		}
	}
	b.LateDeduction = p.LateDeductionPerMinute.Mul(decimal.NewFromInt(int64(b.TotalLateMinutes)))
	b.EarlyDeduction = p.EarlyDeductionPerMinute.Mul(decimal.NewFromInt(int64(b.TotalEarlyMinutes)))

	if len(in.Records) >= p.PerfectAttendanceDays && perfect == len(in.Records) {
		b.PerfectAttendanceBonus = p.PerfectAttendanceBonus
	}

	if in.AverageRating != nil {
		b.RatingBonus = firstTier(p.RatingBonusTiers, *in.AverageRating)
	}
	b.WarningDeduction = firstTier(p.WarningDeductionTiers, decimal.NewFromInt(int64(in.WarningsCount)))

	b.Deductions = b.LateDeduction.Add(b.EarlyDeduction).Add(b.WarningDeduction)
	b.Bonuses = b.PerfectAttendanceBonus.Add(b.RatingBonus)
	b.FinalSalary = b.BaseSalary.Sub(b.Deductions).Add(b.Bonuses)
	return b
}

func firstTier(tiers []Tier, v decimal.Decimal) decimal.Decimal {
	for _, t := range tiers {
		if v.GreaterThanOrEqual(t.Threshold) {
			return t.Amount
		}
	}
	return decimal.Zero
}

// SalaryReport is the per-member payroll statement for a month.
type SalaryReport struct {
	MemberID    string    `json:"memberId"`
	MemberName  string    `json:"memberName"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	GeneratedAt time.Time `json:"generatedAt"`
	Breakdown
}
