package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/runtime/terminal/export"
)

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
	money  export.MoneyFormatter
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer, money export.MoneyFormatter) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer, money: money}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}}{{if .Period.Duration}} ({{.Period.Duration}} days)
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}{{end}}
Total Amount: {{money .TotalAmount}}

{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}
{{$key}}: {{$value}}
{{end}}
{{range .Details}}
- {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}
  {{.Description}}
{{end}}
{{end}}
`
	t, err := template.New("report").Funcs(template.FuncMap{"money": c.money.Format}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
