package models

const (
	millisPerDay   = 24 * 60 * 60 * 1000
	secondsPerYear = 365 * 24 * 60 * 60
	basisPointDiv  = 10_000
)

// PeriodTable maps a lock period in days to its APY in basis points. The
// table is fixed at pool construction; stakes capture their rate at creation
// and are immune to later table changes.
type PeriodTable map[uint32]uint64

// DefaultPeriods returns the standard lock-period offering.
func DefaultPeriods() PeriodTable {
	return PeriodTable{
		30:  500,
		90:  800,
		180: 1200,
		365: 1800,
	}
}

// APYFor looks up the APY for a lock period; ok is false for periods outside
// the offering.
func (t PeriodTable) APYFor(periodDays uint32) (apyBasisPoints uint64, ok bool) {
	apyBasisPoints, ok = t[periodDays]
	return apyBasisPoints, ok
}

// EndTime computes the maturity timestamp for a stake opened at startMS.
func EndTime(startMS uint64, periodDays uint32) uint64 {
	return startMS + uint64(periodDays)*millisPerDay
}
