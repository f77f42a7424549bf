// Package prompt composes the delegate instruction block from a specialist
// descriptor and the raw user query. Templates are embedded at compile time.
package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	contractx "github.com/medai-labs/medai/agent/contract"
	specialistx "github.com/medai-labs/medai/agent/specialist"
)

var (
	//go:embed template/system.txt
	systemRaw string

	//go:embed template/consultation.txt
	consultationRaw string
)

var (
	systemTmpl       = template.Must(template.New("system").Parse(systemRaw))
	consultationTmpl = template.Must(template.New("consultation").Parse(consultationRaw))
)

// Compose builds the prompt for one consultation. The instruction directives
// in the consultation template are fixed contract text and are identical for
// every specialist.
func Compose(d specialistx.Descriptor, query string) (contractx.Prompt, error) {
	var system bytes.Buffer
	if err := systemTmpl.Execute(&system, d); err != nil {
		return contractx.Prompt{}, fmt.Errorf("%w: render system prompt: %v", contractx.ErrValidation, err)
	}

	var user bytes.Buffer
	err := consultationTmpl.Execute(&user, struct {
		Specialist string
		Query      string
	}{
		Specialist: d.DisplayName,
		Query:      query,
	})
	if err != nil {
		return contractx.Prompt{}, fmt.Errorf("%w: render consultation prompt: %v", contractx.ErrValidation, err)
	}

	return contractx.Prompt{
		System: system.String(),
		User:   user.String(),
	}, nil
}
