package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var wib = time.FixedZone("WIB", 7*60*60)

func TestDateFormatter_Locales(t *testing.T) {
	formatter := NewDateFormatter(wib)
	const raw = "2024-05-14T02:30:00Z"

	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "May 14, 2024 at 9:30 AM WIB"},
		{"en", "May 14, 2024 at 9:30 AM WIB"},
		{"en-GB", "14 May 2024, 09:30 WIB"},
		{"id-ID", "14 Mei 2024, 09.30 WIB"},
		{"id", "14 Mei 2024, 09.30 WIB"},
		{"ms-MY", "14 Mei 2024, 09:30 WIB"},
		{"es-ES", "14 de mayo de 2024, 09:30 WIB"},
		{"fr-FR", "14 mai 2024 à 09:30 WIB"},
		{"de-DE", "14. Mai 2024, 09:30 WIB"},
		{"pt-BR", "14 de maio de 2024, 09:30 WIB"},
		{"ja-JP", "2024年5月14日 09:30 WIB"},
		{"id_ID", "14 Mei 2024, 09.30 WIB"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.Format(raw, tt.locale))
		})
	}
}

func TestDateFormatter_UnsupportedLocaleUsesAgnosticLayout(t *testing.T) {
	formatter := NewDateFormatter(wib)

	assert.Equal(t, "2024-05-14 09:30 WIB", formatter.Format("2024-05-14T02:30:00Z", "zh-CN"))
	assert.Equal(t, "2024-05-14 09:30 WIB", formatter.Format("2024-05-14T02:30:00Z", "not a locale!"))
}

func TestDateFormatter_UnparseableDateIsReturnedRaw(t *testing.T) {
	formatter := NewDateFormatter(wib)

	assert.Equal(t, "kemarin sore", formatter.Format("kemarin sore", "id-ID"))
	assert.Equal(t, "", formatter.Format("  ", "id-ID"))
}

func TestDateFormatter_OtherInputShapes(t *testing.T) {
	formatter := NewDateFormatter(wib)

	assert.Equal(t, "14 May 2024, 09:30 WIB", formatter.Format("Tue, 14 May 2024 02:30:00 GMT", "en-GB"))
	assert.Equal(t, "14 May 2024, 09:30 WIB", formatter.Format("1715653800", "en-GB"))
}

func TestReferenceZone(t *testing.T) {
	assert.Equal(t, "WIB", ReferenceZone("No/Such_Zone").String())

	utc := ReferenceZone("UTC")
	assert.Equal(t, "UTC", utc.String())
}
