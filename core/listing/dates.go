package listing

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	timeutil "studio-app-api/pkg/utils/time"
)

// DefaultTimeZone is the reference zone listing dates are rendered in
const DefaultTimeZone = "Asia/Jakarta"

// AgnosticLayout renders dates when the locale is unsupported
const AgnosticLayout = "2006-01-02 15:04 MST"

// ReferenceZone loads a named zone and falls back to a fixed UTC+7 zone
// when tzdata does not know it
func ReferenceZone(name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		name = DefaultTimeZone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*60*60)
}

type localeFormat struct {
	months [12]string
	render func(t time.Time, month string) string
}

var (
	englishMonths    = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	indonesianMonths = [12]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}
	malayMonths      = [12]string{"Januari", "Februari", "Mac", "April", "Mei", "Jun", "Julai", "Ogos", "September", "Oktober", "November", "Disember"}
	spanishMonths    = [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
	frenchMonths     = [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"}
	germanMonths     = [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}
	portugueseMonths = [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
)

func dayMonthYear(clock string) func(time.Time, string) string {
	return func(t time.Time, month string) string {
		return fmt.Sprintf("%d %s %d, %s", t.Day(), month, t.Year(), t.Format(clock))
	}
}

func romanceLong(t time.Time, month string) string {
	return fmt.Sprintf("%d de %s de %d, %s", t.Day(), month, t.Year(), t.Format("15:04 MST"))
}

// supportedLocales and localeFormats share an index; the first entry is the matcher default
var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.Indonesian,
		language.Malay,
		language.Spanish,
		language.French,
		language.German,
		language.Portuguese,
		language.Japanese,
	}

	localeFormats = []localeFormat{
		{englishMonths, func(t time.Time, month string) string {
			return fmt.Sprintf("%s %d, %d at %s", month, t.Day(), t.Year(), t.Format("3:04 PM MST"))
		}},
		{englishMonths, dayMonthYear("15:04 MST")},
		{indonesianMonths, dayMonthYear("15.04 MST")},
		{malayMonths, dayMonthYear("15:04 MST")},
		{spanishMonths, romanceLong},
		{frenchMonths, func(t time.Time, month string) string {
			return fmt.Sprintf("%d %s %d à %s", t.Day(), month, t.Year(), t.Format("15:04 MST"))
		}},
		{germanMonths, func(t time.Time, month string) string {
			return fmt.Sprintf("%d. %s %d, %s", t.Day(), month, t.Year(), t.Format("15:04 MST"))
		}},
		{portugueseMonths, romanceLong},
		{[12]string{}, func(t time.Time, _ string) string {
			return fmt.Sprintf("%d年%d月%d日 %s", t.Year(), int(t.Month()), t.Day(), t.Format("15:04 MST"))
		}},
	}

	localeMatcher = language.NewMatcher(supportedLocales)
)

// DateFormatter renders upstream dates for display in a reference zone
type DateFormatter struct {
	zone *time.Location
}

// NewDateFormatter creates a formatter for a reference zone; nil means DefaultTimeZone
func NewDateFormatter(zone *time.Location) *DateFormatter {
	if zone == nil {
		zone = ReferenceZone(DefaultTimeZone)
	}
	return &DateFormatter{zone: zone}
}

// Format renders raw in the given locale. Unparseable dates come back
// unchanged; unsupported locales use AgnosticLayout. It never fails.
func (f *DateFormatter) Format(raw, locale string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, ok := timeutil.ParseFlexible(raw)
	if !ok {
		return raw
	}
	t := parsed.In(f.zone)

	format, ok := lookupLocale(locale)
	if !ok {
		return t.Format(AgnosticLayout)
	}
	return format.render(t, format.months[t.Month()-1])
}

func lookupLocale(locale string) (localeFormat, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return localeFormat{}, false
	}

	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(localeFormats) {
		return localeFormat{}, false
	}
	return localeFormats[index], true
}
