package constants

// CourtAction is the fixed vocabulary of SJIS court-action values. The
// document prints at most one of these per charge line.
type CourtAction string

const (
	Bound       CourtAction = "BOUND"
	GuiltyPlea  CourtAction = "GUILTY PLEA"
	WaivedToGJ  CourtAction = "WAIVED TO GJ"
	Dismissed   CourtAction = "DISMISSED"
	TimeLapsed  CourtAction = "TIME LAPSED"
	NolPross    CourtAction = "NOL PROSS"
	Convicted   CourtAction = "CONVICTED"
	Indicted    CourtAction = "INDICTED"
	Forfeiture  CourtAction = "FORFEITURE"
	Transfer    CourtAction = "TRANSFER"
	Remanded    CourtAction = "REMANDED"
	Waived      CourtAction = "WAIVED"
	Acquitted   CourtAction = "ACQUITTED"
	Withdrawn   CourtAction = "WITHDRAWN"
	Petition    CourtAction = "PETITION"
	Pretrial    CourtAction = "PRETRIAL"
	CondForf    CourtAction = "COND. FORF."
)

// CourtActionPattern is the alternation used to pull a court action out of
// case or charge text. Order matters: longer values appear before their
// prefixes (WAIVED TO GJ before WAIVED).
const CourtActionPattern = `(BOUND|GUILTY PLEA|WAIVED TO GJ|DISMISSED|TIME LAPSED|NOL PROSS|CONVICTED|INDICTED|FORFEITURE|TRANSFER|REMANDED|WAIVED|ACQUITTED|WITHDRAWN|PETITION|PRETRIAL|COND\. FORF\.)`
