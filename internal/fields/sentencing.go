package fields

import "regexp"

// Sentencing fields repeat once per sentence on multi-sentence cases, so
// every getter here collects all occurrences and joins them with ", ".
var (
	sentenceDateRE        = regexp.MustCompile(`(Sentence Date: )(\d\d?/\d\d?/\d\d\d\d)`)
	sentenceStartDateRE   = regexp.MustCompile(`Sentence Start Date: (\d\d?/\d\d?/\d\d\d\d)`)
	sentenceEndDateRE     = regexp.MustCompile(`Sentence End Date: (\d\d?/\d\d?/\d\d\d\d)`)
	probationBeginDateRE  = regexp.MustCompile(`Probation Begin Date: (\d\d?/\d\d?/\d\d\d\d)`)
	probationPeriodRE     = regexp.MustCompile(`Probation Period: ([^\.]+)`)
	licenseSuspPeriodRE   = regexp.MustCompile(`License Susp Period: ([^\.]+)`)
	jailCreditPeriodRE    = regexp.MustCompile(`Jail Credit Period: ([^\.]+)`)
	sentenceProvisionsRE  = regexp.MustCompile(`Sentence Provisions: ([Y|N]?)`)
	requirementsDoneRE    = regexp.MustCompile(`(?:Requrements Completed: )([YES|NO]?)`)
	sentenceUpdatedByRE   = regexp.MustCompile(`Updated By: (\w{3}?)`)
	sentenceLastUpdateRE  = regexp.MustCompile(`Last Update: (\d\d?/\d\d?/\d\d\d\d)`)
	probationRevokeDateRE = regexp.MustCompile(`Probation Revoke: (\d\d?/\d\d?/\d\d\d\d)`)
)

// SentenceDate returns the sentence dates.
func SentenceDate(text string) string {
	return joinAll(sentenceDateRE, text, 2)
}

// SentenceStartDate returns the sentence start dates.
func SentenceStartDate(text string) string {
	return joinAll(sentenceStartDateRE, text, 1)
}

// SentenceEndDate returns the sentence end dates.
func SentenceEndDate(text string) string {
	return joinAll(sentenceEndDateRE, text, 1)
}

// ProbationBeginDate returns the probation begin dates.
func ProbationBeginDate(text string) string {
	return joinAll(probationBeginDateRE, text, 1)
}

// ProbationPeriod returns the probation period entries.
func ProbationPeriod(text string) string {
	return joinAll(probationPeriodRE, text, 1)
}

// LicenseSuspPeriod returns the license suspension period entries.
func LicenseSuspPeriod(text string) string {
	return joinAll(licenseSuspPeriodRE, text, 1)
}

// JailCreditPeriod returns the jail credit period entries.
func JailCreditPeriod(text string) string {
	return joinAll(jailCreditPeriodRE, text, 1)
}

// SentenceProvisions returns the sentence provision flags.
func SentenceProvisions(text string) string {
	return joinAll(sentenceProvisionsRE, text, 1)
}

// SentencingRequirementsCompleted reports whether the sentencing
// requirements were completed. The label is misspelled "Requrements" in
// the source documents.
func SentencingRequirementsCompleted(text string) string {
	return joinAll(requirementsDoneRE, text, 1)
}

// SentenceUpdatedBy returns the initials of the sentence updaters.
func SentenceUpdatedBy(text string) string {
	return joinAll(sentenceUpdatedByRE, text, 1)
}

// SentenceLastUpdate returns the sentence last-update dates.
func SentenceLastUpdate(text string) string {
	return joinAll(sentenceLastUpdateRE, text, 1)
}

// ProbationRevoke returns the probation revocation dates.
func ProbationRevoke(text string) string {
	return joinAll(probationRevokeDateRE, text, 1)
}
