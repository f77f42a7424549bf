package consult

import (
	"fmt"
	"strings"
	"time"

	specialistx "github.com/medai-labs/medai/agent/specialist"
)

const timestampLayout = "2006-01-02 15:04:05"

const boxRule = "─────────────────────────────────────────────────────────"

const disclaimerFooter = `⚠️  MEDICAL DISCLAIMER
This guidance is informational only and not a substitute for
professional medical advice. Always consult qualified healthcare
professionals for diagnosis, treatment, and emergency situations.`

const fallbackGuidance = `It appears the live AI consultation failed to complete (network or API error).
Below is a simulated guidance response so you can continue testing the application layout and flow.

-- SAMPLE GUIDANCE START --

Thank you for describing your concern. Based on the symptoms you've provided, here are some possibilities and suggestions:

- Common causes may include muscle strain, overuse, or minor nerve irritation.
- If you have sudden severe pain, numbness, weakness, or loss of function, seek immediate medical attention.
- For mild to moderate pain: rest, ice, compression, elevation (RICE) and use over-the-counter analgesics as appropriate.
- Monitor for worsening symptoms and consult a healthcare professional if symptoms persist beyond a few days.

-- SAMPLE GUIDANCE END --`

// FormatSuccess wraps delegate output in the fixed display template: boxed
// specialist header, consultation date, raw body, disclaimer footer.
func FormatSuccess(d specialistx.Descriptor, ts time.Time, body string) string {
	var b strings.Builder
	writeHeader(&b, d, "", ts)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n\n")
	b.WriteString(boxRule)
	b.WriteString("\n\n")
	b.WriteString(disclaimerFooter)
	b.WriteString("\n\n")
	b.WriteString(boxRule)
	b.WriteString("\n")
	return b.String()
}

// FormatFallback synthesizes the simulated-guidance outcome shown when the
// delegate call fails. The stringified cause is included so the failure stays
// visible without dead-ending the interface.
func FormatFallback(d specialistx.Descriptor, ts time.Time, cause error) string {
	causeText := "unknown error"
	if cause != nil {
		causeText = cause.Error()
	}

	var b strings.Builder
	writeHeader(&b, d, " (Demo Response)", ts)
	b.WriteString("\n")
	b.WriteString(fallbackGuidance)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "⚠️ Note: This is a simulated message. The real AI consultation failed with error: %s\n", causeText)
	return b.String()
}

func writeHeader(b *strings.Builder, d specialistx.Descriptor, suffix string, ts time.Time) {
	b.WriteString("┌" + boxRule + "┐\n")
	fmt.Fprintf(b, "│ 🏥 %s%s\n", strings.ToUpper(d.DisplayName), suffix)
	b.WriteString("└" + boxRule + "┘\n")
	fmt.Fprintf(b, "📅 Consultation Date: %s\n", ts.Format(timestampLayout))
}
