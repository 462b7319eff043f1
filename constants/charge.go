package constants

// Charge fragment layout. SJIS charge lines are fixed-width: a three-digit
// sequence number, one space, a four-character charge code, then free text.
// The character immediately after the code slot discriminates disposition
// rows (digit: start of a court-action date) from filing rows (letter:
// start of the description).
const (
	ChargeNumStart  = 0
	ChargeNumEnd    = 3
	ChargeCodeStart = 4
	ChargeCodeEnd   = 8
	ChargeSortIndex = 9

	// DispositionDescOffset is where the description begins in the first
	// cite segment of a disposition row (after number, code, and date).
	DispositionDescOffset = 19
	// FilingDescOffset is where the description begins in the first cite
	// segment of a filing row (after number and code).
	FilingDescOffset = 9
)

// TypeDescriptionPattern matches the charge type vocabulary. TRAFFIC
// MISDEMEANOR is normalized to MISDEMEANOR after matching.
const TypeDescriptionPattern = `(TRAFFIC MISDEMEANOR|BOND|FELONY|MISDEMEANOR|OTHER|TRAFFIC|VIOLATION)`

// CategoryPattern matches the charge category vocabulary.
const CategoryPattern = `(ALCOHOL|BOND|CONSERVATION|DOCKET|DRUG|GOVERNMENT|HEALTH|MUNICIPAL|OTHER|PERSONAL|PROPERTY|SEX|TRAFFIC)`

// AttemptQualifierPattern flags attempt, solicitation, and conspiracy
// charges. A match on the description cancels every disqualification
// category for that charge.
const AttemptQualifierPattern = `(A ATT|ATTEMPT|S SOLICIT|CONSP)`

// CERVCodesPattern lists the charge codes disqualifying from voter
// registration until civil rights are restored (Ala. Code § 17-3-30.1).
// Enumerated statutory data; do not re-derive.
const CERVCodesPattern = `(OSUA|EGUA|MAN1|MAN2|MANS|ASS1|ASS2|KID1|KID2|HUT1|HUT2|BUR1|BUR2|TOP1|TOP2|TPCS|TPCD|TPC1|TET2|TOD2|ROB1|ROB2|ROB3|FOR1|FOR2|FR2D|MIOB|TRAK|TRAG|VDRU|VDRY|TRAO|TRFT|TRMA|TROP|CHAB|WABC|ACHA|ACAL)`

// PardonCodesPattern lists the charge codes disqualifying until pardoned.
const PardonCodesPattern = `(RAP1|RAP2|SOD1|SOD2|STSA|SXA1|SXA2|ECHI|SX12|CSSC|FTCS|MURD|MRDI|MURR|FMUR|PMIO|POBM|MIPR|POMA|INCE)`

// PermanentCodesPattern matches permanently disqualifying charges. Runs
// against the whole fragment, not just the code slot, because capital
// murder is flagged in the description text.
const PermanentCodesPattern = `(CM\d\d|CMUR)|(CAPITAL)`
