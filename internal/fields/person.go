package fields

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nameCaptionRE  = regexp.MustCompile(`(?:VS\.|V\.| VS | V | VS: |-VS-)([A-Z\s]{10,100})(Case Number)*`)
	nameFallbackRE = regexp.MustCompile(`(?:DOB)(.+)(?:Name)`)
	aliasRE        = regexp.MustCompile(`(?:SSN)(.{5,75})(?:Alias)`)
	dobRE          = regexp.MustCompile(`(?s)(\d{2}/\d{2}/\d{4})(?:.{0,5}DOB:)`)
	phoneRE        = regexp.MustCompile(`Phone: (.+)`)
	nonDigitRE     = regexp.MustCompile(`[^0-9]`)
	raceRE         = regexp.MustCompile(`(B|W|H|A)/(?:F|M)`)
	sexRE          = regexp.MustCompile(`(?:B|W|H|A)/(F|M)`)
	address1RE     = regexp.MustCompile(`(?:Address 1:)(.+)`)
	address1CutRE  = regexp.MustCompile(`Phone.+`)
	address2RE     = regexp.MustCompile(`(?:Address 2:)(.+)`)
	address2CutRE  = regexp.MustCompile(`Defendant Information|JID:.+`)
	cityStateRE    = regexp.MustCompile(`(?:City: )(.*)(?:State: )(.*)`)
	zipRE          = regexp.MustCompile(`(?:Zip: )(.+)`)
	zipCutRE       = regexp.MustCompile(`-0000$|[A-Z].+`)
	countryRE      = regexp.MustCompile(`Country: (\w*)`)
	countryCutRE   = regexp.MustCompile(`Enforcement|Party|Country:`)
	streetCutRE    = regexp.MustCompile(`JID: \w{3} Hardship.*|Defendant Information.*`)
	ssnRE          = regexp.MustCompile(`SSN: ([X\d]{3}\-[X\d]{2}-[X\d]{4})`)
	weightRE       = regexp.MustCompile(`Weight: (\d+)`)
	heightRE       = regexp.MustCompile(`Height : (\d'\d{2})`)
	eyesHairRE     = regexp.MustCompile(`Eyes/Hair: (\w{3})/(\w{3})`)
)

// Name returns the defendant name from the case caption. The caption form
// ("STATE OF ALABAMA VS. NAME Case Number") wins; the DOB-to-Name span is
// the fallback for older layouts.
func Name(text string) string {
	if v, ok := search(nameCaptionRE, text, 1); ok {
		v = strings.ReplaceAll(v, "Case Number:", "")
		return strings.TrimSpace(strings.TrimRight(v, "C"))
	}
	if v, ok := search(nameFallbackRE, text, 1); ok {
		v = strings.ReplaceAll(v, ":", "")
		v = strings.ReplaceAll(v, "Case Number", "")
		return strings.TrimSpace(v)
	}
	return ""
}

// Alias returns the alias printed between the SSN and Alias labels.
func Alias(text string) string {
	v, _ := search(aliasRE, text, 1)
	return strings.TrimSpace(strings.ReplaceAll(v, ":", ""))
}

// DOB returns the date of birth, printed to the left of its label.
func DOB(text string) string {
	v, _ := search(dobRE, text, 1)
	var b strings.Builder
	for _, r := range v {
		if (r >= '0' && r <= '9') || r == '/' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone returns the ten-digit phone number, or "" for missing, short, or
// placeholder (205-000-0000) values.
func Phone(text string) string {
	v, ok := search(phoneRE, text, 1)
	if !ok {
		return ""
	}
	digits := nonDigitRE.ReplaceAllString(v, "")
	if len(digits) < 7 {
		return ""
	}
	if len(digits) >= 10 && digits[:10] == "2050000000" {
		return ""
	}
	if len(digits) > 10 {
		return digits[:10]
	}
	return digits
}

// Race returns the race half of the combined race/sex field.
func Race(text string) string {
	v, _ := search(raceRE, text, 1)
	return v
}

// Sex returns the sex half of the combined race/sex field.
func Sex(text string) string {
	v, _ := search(sexRE, text, 1)
	return v
}

// Address1 returns the first address line with the adjoining phone label
// stripped.
func Address1(text string) string {
	v, _ := search(address1RE, text, 1)
	return strings.TrimSpace(address1CutRE.ReplaceAllString(v, ""))
}

// Address2 returns the second address line.
func Address2(text string) string {
	v, _ := search(address2RE, text, 1)
	return strings.TrimSpace(address2CutRE.ReplaceAllString(v, ""))
}

// City returns the city component of the address block.
func City(text string) string {
	v, _ := search(cityStateRE, text, 1)
	return strings.TrimSpace(v)
}

// State returns the state component of the address block.
func State(text string) string {
	v, _ := search(cityStateRE, text, 2)
	return strings.TrimSpace(v)
}

// ZipCode returns the zip code, dropping the -0000 extension and any label
// bleed.
func ZipCode(text string) string {
	v, _ := search(zipRE, text, 1)
	return strings.TrimSpace(zipCutRE.ReplaceAllString(strings.TrimSpace(v), ""))
}

// Country returns the country code.
func Country(text string) string {
	v, _ := search(countryRE, text, 1)
	return strings.TrimSpace(countryCutRE.ReplaceAllString(v, ""))
}

// StreetAddress joins both address lines and strips the hardship and
// section labels that follow them.
func StreetAddress(text string) string {
	joined := Address1(text) + " " + Address2(text)
	return strings.TrimSpace(streetCutRE.ReplaceAllString(joined, ""))
}

// SSN returns the (usually masked) social security number.
func SSN(text string) string {
	v, _ := search(ssnRE, text, 1)
	return strings.TrimSpace(v)
}

// Weight returns the weight in pounds, 0 when absent.
func Weight(text string) int {
	v, ok := search(weightRE, text, 1)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Height returns the height in feet'inches" notation.
func Height(text string) string {
	v, ok := search(heightRE, text, 1)
	if !ok {
		return ""
	}
	return v + `"`
}

// Eyes returns the eye color code from the combined eyes/hair field.
func Eyes(text string) string {
	v, _ := search(eyesHairRE, text, 1)
	return v
}

// Hair returns the hair color code from the combined eyes/hair field.
func Hair(text string) string {
	v, _ := search(eyesHairRE, text, 2)
	return v
}
