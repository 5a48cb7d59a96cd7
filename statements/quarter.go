package statements

import (
	"fmt"
	"time"

	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/utils"
)

// Quarter fiscal quarter, season in 1..4
type Quarter struct {
	Year   int
	Season int
}

// QuarterOf return the quarter containing date
func QuarterOf(date time.Time) Quarter {
	return Quarter{Year: date.Year(), Season: (int(date.Month())-1)/3 + 1}
}

// Next return the following quarter
func (q Quarter) Next() Quarter {
	if q.Season == 4 {
		return Quarter{Year: q.Year + 1, Season: 1}
	}

	return Quarter{Year: q.Year, Season: q.Season + 1}
}

// First return first day of quarter
func (q Quarter) First(location *time.Location) time.Time {
	return time.Date(q.Year, time.Month((q.Season-1)*3+1), 1, 0, 0, 0, 0, location)
}

// Contains date in quarter
func (q Quarter) Contains(date time.Time) bool {
	return QuarterOf(date) == q
}

// Before q earlier than other
func (q Quarter) Before(other Quarter) bool {
	if q.Year != other.Year {
		return q.Year < other.Year
	}

	return q.Season < other.Season
}

// IsZero quarter unset
func (q Quarter) IsZero() bool {
	return q.Year == 0 && q.Season == 0
}

// String column label like 2023Q1
func (q Quarter) String() string {
	return fmt.Sprintf("%dQ%d", q.Year, q.Season)
}

// DateRange inclusive calendar period
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange create date range, start must not be later than end
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, NewError(constants.ErrInvalidDateRange,
			fmt.Sprintf("start date %s is later than end date %s", start.Format(constants.DatePattern), end.Format(constants.DatePattern)),
			nil)
	}

	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange create date range from YYYY-MM-DD texts
func ParseDateRange(start, end string) (DateRange, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return DateRange{}, NewError(constants.ErrInvalidDate, fmt.Sprintf("start date %q", start), err)
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return DateRange{}, NewError(constants.ErrInvalidDate, fmt.Sprintf("end date %q", end), err)
	}

	return NewDateRange(startDate, endDate)
}

// Quarters walk quarter boundaries from start until past end
func (r DateRange) Quarters() []Quarter {
	var quarters []Quarter
	current := r.Start
	for !current.After(r.End) {
		quarter := QuarterOf(current)
		quarters = append(quarters, quarter)
		current = quarter.Next().First(current.Location())
	}

	return quarters
}
